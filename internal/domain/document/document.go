// Package document define el árbol estructurado del documento imprimible y
// la función pura que lo deriva del agregado. El árbol es independiente del
// formato final: un serializador aparte (HTML, PDF) lo convierte en marcado.
package document

// MetaRow par etiqueta/valor del encabezado (N° de factura, fechas, termin).
type MetaRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Header encabezado del documento: logotipo opcional y metadatos.
type Header struct {
	LogoDataURL string    `json:"logoDataUrl,omitempty"`
	Meta        []MetaRow `json:"meta"`
}

// PartyBlock bloque de una de las partes ("Dari:" / "Kepada:").
// Lines contiene solo las líneas presentes, ya formateadas y en orden.
type PartyBlock struct {
	Heading string   `json:"heading"`
	Name    string   `json:"name"`
	Lines   []string `json:"lines"`
}

// ItemRow fila de la tabla de líneas, con montos ya formateados.
type ItemRow struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unitPrice"`
	TaxPercent  string `json:"taxPercent"`
	Discount    string `json:"discount"`
	Total       string `json:"total"`
}

// SummaryRow fila del bloque de resumen. Emphasis marca la fila del total.
type SummaryRow struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// NotesSection sección de notas; solo existe si hay texto.
type NotesSection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Document es el documento terminado, listo para un serializador o para el
// generador de PDF externo.
type Document struct {
	Title   string        `json:"title"`
	Header  Header        `json:"header"`
	From    PartyBlock    `json:"from"`
	To      PartyBlock    `json:"to"`
	Items   []ItemRow     `json:"items"`
	Summary []SummaryRow  `json:"summary"`
	Notes   *NotesSection `json:"notes,omitempty"`
	Footer  []string      `json:"footer"`
}
