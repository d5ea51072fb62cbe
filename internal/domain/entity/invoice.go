package entity

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/pkg/money"
)

// DiscountType modo del descuento global.
type DiscountType string

const (
	DiscountNominal DiscountType = "nominal"
	DiscountPercent DiscountType = "percent"
)

// ParseDiscountType normaliza el valor capturado; cualquier cosa distinta
// de "percent" se trata como nominal, igual que el editor original.
func ParseDiscountType(s string) DiscountType {
	if s == string(DiscountPercent) {
		return DiscountPercent
	}
	return DiscountNominal
}

// Settings parámetros globales de cálculo de la factura.
type Settings struct {
	EnablePPN          bool            `json:"enablePPN"`
	PPNRate            decimal.Decimal `json:"ppnRate"` // porcentaje, 11 por defecto
	GlobalDiscount     decimal.Decimal `json:"globalDiscount"`
	GlobalDiscountType DiscountType    `json:"globalDiscountType"`
	ShippingCost       decimal.Decimal `json:"shippingCost"`
}

// InvoiceMeta metadatos del documento; fechas como cadenas YYYY-MM-DD.
type InvoiceMeta struct {
	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate"`
	PaymentTerms  string `json:"paymentTerms"`
}

// MetaField clave lógica de un campo de InvoiceMeta.
type MetaField string

const (
	MetaInvoiceNumber MetaField = "invoiceNumber"
	MetaInvoiceDate   MetaField = "invoiceDate"
	MetaDueDate       MetaField = "dueDate"
	MetaPaymentTerms  MetaField = "paymentTerms"
)

// Apply actualiza el campo identificado por la clave lógica.
func (m *InvoiceMeta) Apply(field MetaField, value string) error {
	switch field {
	case MetaInvoiceNumber:
		m.InvoiceNumber = value
	case MetaInvoiceDate:
		m.InvoiceDate = value
	case MetaDueDate:
		m.DueDate = value
	case MetaPaymentTerms:
		m.PaymentTerms = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}

// SettingsField clave lógica de un campo de Settings.
type SettingsField string

const (
	SettingEnablePPN          SettingsField = "enablePPN"
	SettingPPNRate            SettingsField = "ppnRate"
	SettingGlobalDiscount     SettingsField = "globalDiscount"
	SettingGlobalDiscountType SettingsField = "globalDiscountType"
	SettingShippingCost       SettingsField = "shippingCost"
)

// Apply actualiza el campo identificado por la clave lógica con coerción
// permisiva: booleanos o números mal formados valen false/cero.
func (s *Settings) Apply(field SettingsField, value string) error {
	switch field {
	case SettingEnablePPN:
		b, err := strconv.ParseBool(value)
		s.EnablePPN = err == nil && b
	case SettingPPNRate:
		s.PPNRate = money.ParseAmount(value)
	case SettingGlobalDiscount:
		s.GlobalDiscount = money.ParseAmount(value)
	case SettingGlobalDiscountType:
		s.GlobalDiscountType = ParseDiscountType(value)
	case SettingShippingCost:
		s.ShippingCost = money.ParseAmount(value)
	default:
		return domain.ErrUnknownField
	}
	return nil
}

// Invoice es la raíz del agregado: las dos partes, los metadatos, las líneas
// en orden de inserción, los parámetros de cálculo y las notas libres.
// No cachea ningún total: toda cifra derivada se recalcula al consultarla.
type Invoice struct {
	Seller   Party       `json:"seller"`
	Customer Party       `json:"customer"`
	Meta     InvoiceMeta `json:"invoiceMeta"`
	Items    []LineItem  `json:"items"`
	Settings Settings    `json:"settings"`
	Notes    string      `json:"notes"`
}

// NewInvoice crea un agregado vacío con los valores por defecto del editor:
// PPN deshabilitado a la tasa indicada y descuento global nominal en cero.
func NewInvoice(ppnRate decimal.Decimal) *Invoice {
	return &Invoice{
		Items: []LineItem{},
		Settings: Settings{
			PPNRate:            ppnRate,
			GlobalDiscountType: DiscountNominal,
		},
	}
}

// AddItem agrega una línea nueva al final y la devuelve.
func (inv *Invoice) AddItem() LineItem {
	it := NewLineItem()
	inv.Items = append(inv.Items, it)
	return it
}

// Item devuelve un puntero a la línea con ese identificador, o nil.
func (inv *Invoice) Item(id ItemID) *LineItem {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			return &inv.Items[i]
		}
	}
	return nil
}

// RemoveItem elimina exactamente la línea indicada preservando el orden de
// las demás. Devuelve false si el identificador no existe.
func (inv *Invoice) RemoveItem(id ItemID) bool {
	for i := range inv.Items {
		if inv.Items[i].ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Clone devuelve una copia profunda del agregado (las líneas se copian).
func (inv *Invoice) Clone() *Invoice {
	cp := *inv
	cp.Items = make([]LineItem, len(inv.Items))
	copy(cp.Items, inv.Items)
	return &cp
}
