// Package invoice contiene los servicios de dominio puros de la factura:
// el cálculo de totales y la validación previa a la emisión. Ninguna función
// de este paquete muta el agregado ni cachea resultados; cada consulta
// recalcula todo desde el estado actual.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/domain/entity"
	"github.com/jhoicas/faktur-api/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// ItemTotal deriva el total de una línea:
//
//	max(0, Round2(cant·precio + (cant·precio)·tasa/100 − descuento))
//
// Un descuento mayor que subtotal+impuesto acota el resultado en cero,
// nunca produce un total de línea negativo.
func ItemTotal(it entity.LineItem) decimal.Decimal {
	subtotal := it.Quantity.Mul(it.UnitPrice)
	tax := subtotal.Mul(it.TaxRate).Div(hundred)
	total := money.Round2(subtotal.Add(tax).Sub(it.Discount))
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// Totals cifras derivadas del agregado completo.
type Totals struct {
	Subtotal       decimal.Decimal // Σ ItemTotal, orden de inserción irrelevante
	DiscountAmount decimal.Decimal // descuento global efectivo, acotado al subtotal
	TaxableBase    decimal.Decimal // subtotal − descuento
	PPN            decimal.Decimal // impuesto sobre la base post-descuento
	Shipping       decimal.Decimal
	GrandTotal     decimal.Decimal
}

// Calculate deriva todos los totales del estado actual del agregado.
//
// El orden de composición es regla de diseño, no accidente: el PPN se
// calcula sobre la base post-descuento (subtotal − descuento global),
// nunca sobre el subtotal crudo.
func Calculate(inv *entity.Invoice) Totals {
	subtotal := decimal.Zero
	for _, it := range inv.Items {
		subtotal = subtotal.Add(ItemTotal(it))
	}

	discount := inv.Settings.GlobalDiscount
	if inv.Settings.GlobalDiscountType == entity.DiscountPercent {
		discount = inv.Settings.GlobalDiscount.Div(hundred).Mul(subtotal)
	}
	// El descuento nunca supera el subtotal: no hay base imponible negativa.
	discount = decimal.Min(discount, subtotal)

	base := subtotal.Sub(discount)

	ppn := decimal.Zero
	if inv.Settings.EnablePPN {
		ppn = money.Round2(base.Mul(inv.Settings.PPNRate).Div(hundred))
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxableBase:    base,
		PPN:            ppn,
		Shipping:       inv.Settings.ShippingCost,
		GrandTotal:     money.Round2(base.Add(ppn).Add(inv.Settings.ShippingCost)),
	}
}
