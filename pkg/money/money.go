// Package money concentra las reglas numéricas del documento: redondeo a dos
// decimales, formato/parseo de Rupias (locale id-ID) y coerción permisiva de
// entradas del editor. Todo monto de la aplicación pasa por aquí.
package money

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer agrupa dígitos según la convención id-ID (punto como separador de miles).
var printer = message.NewPrinter(language.Indonesian)

// Round2 redondea a 2 decimales con half-away-from-zero.
// Es la política observada del sistema original; con aritmética decimal no hay
// error de representación binaria, así que no se necesita corrección epsilon.
// Idempotente: Round2(Round2(x)) == Round2(x).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// FormatRupiah formatea un monto como Rupias sin decimales, con separador de
// miles id-ID y prefijo "Rp". El monto cero produce "Rp 0".
func FormatRupiah(d decimal.Decimal) string {
	whole := Round2(d).Round(0)
	return printer.Sprintf("Rp %d", whole.IntPart())
}

// ParseRupiah es la operación inversa de FormatRupiah: quita el símbolo y los
// espacios, elimina los puntos de miles y convierte la coma decimal a punto.
// Entrada vacía o no parseable produce cero, nunca error.
// Ley de ida y vuelta: ParseRupiah(FormatRupiah(x)) recupera x a precisión
// entera (el formato descarta los decimales a propósito).
func ParseRupiah(s string) decimal.Decimal {
	clean := strings.NewReplacer(
		"Rp", "",
		" ", "",
		" ", "",
		".", "",
	).Replace(s)
	clean = strings.ReplaceAll(clean, ",", ".")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseAmount coerciona una entrada libre del editor a un decimal.
// Texto vacío o no numérico produce cero (falla en silencio, nunca propaga).
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// meses en indonesio para la fecha larga del documento.
var monthsID = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDateID convierte una fecha YYYY-MM-DD al formato largo indonesio
// ("5 Maret 2024"). Entrada vacía o inválida produce cadena vacía.
func FormatDateID(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ""
	}
	// fmt y no printer: el año no lleva separador de miles.
	return fmt.Sprintf("%d %s %d", t.Day(), monthsID[t.Month()-1], t.Year())
}
