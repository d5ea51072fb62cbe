// Package editor implementa el caso de uso del documento único: posee el
// agregado Invoice en exclusiva y ejecuta cada operación del colaborador de
// edición como un turno serializado. Ningún total se cachea; toda consulta
// recalcula desde el estado vigente.
package editor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/application/numbering"
	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/internal/domain/document"
	"github.com/jhoicas/faktur-api/internal/domain/entity"
	invcalc "github.com/jhoicas/faktur-api/internal/domain/invoice"
	"github.com/jhoicas/faktur-api/pkg/money"
)

// Service posee el único agregado Invoice de la sesión. El mutex serializa
// los turnos de edición: el modelo es monodocumento y monousuario, pero el
// transporte HTTP puede entregar peticiones concurrentes.
type Service struct {
	mu      sync.Mutex
	inv     *entity.Invoice
	extra   map[string]jsonRaw // claves desconocidas del último respaldo cargado
	numbers *numbering.Generator
	ppnRate decimal.Decimal
	now     func() time.Time
}

// NewService construye el editor con un agregado vacío. El llamador decide
// el primer contenido (Reset o LoadSample).
func NewService(numbers *numbering.Generator, defaultPPNRate decimal.Decimal) *Service {
	return &Service{
		inv:     entity.NewInvoice(defaultPPNRate),
		numbers: numbers,
		ppnRate: defaultPPNRate,
		now:     time.Now,
	}
}

// WithClock reemplaza el reloj (para tests) y devuelve el mismo servicio.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Invoice devuelve una copia del agregado actual.
func (s *Service) Invoice() entity.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.inv.Clone()
}

// UpdateSeller actualiza un campo del emisor por clave lógica.
func (s *Service) UpdateSeller(field entity.PartyField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Seller.Apply(field, value)
}

// UpdateCustomer actualiza un campo del cliente por clave lógica.
func (s *Service) UpdateCustomer(field entity.PartyField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Customer.Apply(field, value)
}

// UpdateMeta actualiza un campo de los metadatos por clave lógica.
func (s *Service) UpdateMeta(field entity.MetaField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Meta.Apply(field, value)
}

// UpdateSettings actualiza un parámetro de cálculo por clave lógica.
func (s *Service) UpdateSettings(field entity.SettingsField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.Settings.Apply(field, value)
}

// UpdateNotes reemplaza el texto libre de notas.
func (s *Service) UpdateNotes(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inv.Notes = text
}

// AddItem agrega una línea con los valores por defecto y la devuelve.
func (s *Service) AddItem() entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inv.AddItem()
}

// UpdateItem actualiza un campo de la línea indicada por clave lógica.
// Retorna domain.ErrNotFound si el identificador no existe.
func (s *Service) UpdateItem(id entity.ItemID, field entity.ItemField, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := s.inv.Item(id)
	if it == nil {
		return domain.ErrNotFound
	}
	return it.Apply(field, value)
}

// RemoveItem elimina la línea indicada preservando el orden de las demás.
func (s *Service) RemoveItem(id entity.ItemID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.inv.RemoveItem(id) {
		return domain.ErrNotFound
	}
	return nil
}

// Totals recalcula las cifras derivadas del estado actual.
func (s *Service) Totals() invcalc.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return invcalc.Calculate(s.inv)
}

// Summary resumen para pantalla: cifras crudas más cadenas formateadas.
// El descuento se muestra como lo capturó el usuario: "N %" en modo
// porcentual, monto en Rupias en modo nominal.
type Summary struct {
	Subtotal string
	Discount string
	PPN      string
	Shipping string
	Total    string
	Totals   invcalc.Totals
}

// Summary deriva el resumen de totales con formato de presentación.
func (s *Service) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := invcalc.Calculate(s.inv)
	discount := money.FormatRupiah(s.inv.Settings.GlobalDiscount)
	if s.inv.Settings.GlobalDiscountType == entity.DiscountPercent {
		discount = s.inv.Settings.GlobalDiscount.StringFixed(2) + " %"
	}
	return Summary{
		Subtotal: money.FormatRupiah(totals.Subtotal),
		Discount: discount,
		PPN:      money.FormatRupiah(totals.PPN),
		Shipping: money.FormatRupiah(totals.Shipping),
		Total:    money.FormatRupiah(totals.GrandTotal),
		Totals:   totals,
	}
}

// Render deriva el documento imprimible del estado actual.
func (s *Service) Render() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return document.Render(s.inv)
}

// Validate ejecuta la validación de emisión sobre el estado actual.
func (s *Service) Validate() invcalc.ValidationResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return invcalc.ValidateForIssue(s.inv)
}

// Reset descarta el documento y arranca uno vacío con número nuevo y la
// fecha de hoy, como el botón de reinicio del editor.
func (s *Service) Reset(ctx context.Context) error {
	number, err := s.numbers.Next(ctx)
	if err != nil {
		return fmt.Errorf("editor: generar número de factura: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	inv := entity.NewInvoice(s.ppnRate)
	inv.Meta.InvoiceNumber = number
	inv.Meta.InvoiceDate = s.now().UTC().Format("2006-01-02")
	s.inv = inv
	s.extra = nil
	return nil
}
