package entity

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/pkg/money"
)

// ItemID identificador opaco de una línea. Acepta número o cadena al
// deserializar, para poder cargar respaldos generados por versiones que
// usaban identificadores numéricos.
type ItemID string

// UnmarshalJSON tolera tanto "abc" como 1696583512345.
func (id *ItemID) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ItemID(s)
		return nil
	}
	*id = ItemID(b)
	return nil
}

// LineItem es una línea de la factura. Cantidad, precio, tasa y descuento
// no se validan al capturar: la calculadora los acota al derivar el total.
type LineItem struct {
	ID          ItemID          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TaxRate     decimal.Decimal `json:"itemTax"`      // porcentaje 0–100 esperado
	Discount    decimal.Decimal `json:"itemDiscount"` // monto nominal por línea
}

// NewLineItem crea una línea con los valores por defecto del editor
// (cantidad 1, precio 0) y un identificador opaco nuevo.
func NewLineItem() LineItem {
	return LineItem{
		ID:       ItemID(uuid.NewString()),
		Quantity: decimal.NewFromInt(1),
	}
}

// ItemField clave lógica de un campo de LineItem.
type ItemField string

const (
	ItemDescription ItemField = "description"
	ItemQuantity    ItemField = "quantity"
	ItemUnitPrice   ItemField = "unitPrice"
	ItemTaxRate     ItemField = "itemTax"
	ItemDiscount    ItemField = "itemDiscount"
)

// Apply actualiza el campo identificado por la clave lógica. Los campos
// numéricos se coercionan en modo permisivo: entrada no numérica vale cero.
func (it *LineItem) Apply(field ItemField, value string) error {
	switch field {
	case ItemDescription:
		it.Description = value
	case ItemQuantity:
		it.Quantity = money.ParseAmount(value)
	case ItemUnitPrice:
		it.UnitPrice = money.ParseAmount(value)
	case ItemTaxRate:
		it.TaxRate = money.ParseAmount(value)
	case ItemDiscount:
		it.Discount = money.ParseAmount(value)
	default:
		return domain.ErrUnknownField
	}
	return nil
}
