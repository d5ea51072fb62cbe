package dto

// FieldUpdateRequest actualización de un campo de una sección de la factura
// (seller, customer, meta, settings o un ítem). El valor llega siempre como
// texto, igual que desde un formulario; los servicios hacen la coerción.
type FieldUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// NotesRequest reemplazo del bloque de notas.
type NotesRequest struct {
	Notes string `json:"notes"`
}

// ItemCreatedResponse salida tras agregar una línea nueva.
type ItemCreatedResponse struct {
	ID string `json:"id"`
}

// ValidateResponse resultado de la validación de emisión.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Fields []string `json:"fields"`
}

// ResetResponse salida tras reiniciar la factura.
type ResetResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// TotalsResponse cifras derivadas crudas, como cadenas decimales exactas.
type TotalsResponse struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discountAmount"`
	TaxableBase    string `json:"taxableBase"`
	PPN            string `json:"ppn"`
	Shipping       string `json:"shipping"`
	GrandTotal     string `json:"grandTotal"`
}

// SummaryResponse resumen de totales con formato de presentación en Rupias.
type SummaryResponse struct {
	Subtotal string         `json:"subtotal"`
	Discount string         `json:"discount"`
	PPN      string         `json:"ppn"`
	Shipping string         `json:"shipping"`
	Total    string         `json:"total"`
	Totals   TotalsResponse `json:"totals"`
}
