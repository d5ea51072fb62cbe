package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUnknownField  = errors.New("campo desconocido")
	ErrInvalidFormat = errors.New("formato de archivo inválido")
	ErrNotValid      = errors.New("la factura no pasa la validación")
	ErrNoItems       = errors.New("la factura debe tener al menos un ítem")
	ErrUnauthorized  = errors.New("no autorizado")
)
