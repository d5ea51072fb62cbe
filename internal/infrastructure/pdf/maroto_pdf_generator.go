// Package pdf implementa el renderizador externo de PDF sobre Maroto v2,
// consumiendo el árbol de documento ya derivado (no el agregado).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa emisora          │  INVOICE + N° + fechas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Dari: emisor          │  Kepada: cliente                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Deskripsi | Qty | Harga | Pajak | Diskon | Total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Subtotal / Diskon / PPN / Ongkos Kirim / TOTAL    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Catatan + pie de agradecimiento                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/faktur-api/internal/domain/document"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa export.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate produce el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(_ context.Context, doc *document.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(doc.From, doc.To))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(doc.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(doc.Summary))

	if doc.Notes != nil {
		m.AddRows(notesRow(doc.Notes))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(doc.Footer)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del emisor (izq) y título + metadatos (der).
func headerRow(doc *document.Document) core.Row {
	left := col.New(6).Add(
		text.New(doc.From.Name, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
		}),
	)
	for i, l := range doc.From.Lines {
		left.Add(text.New(l, props.Text{
			Size: 8, Top: float64(9 + i*4), Color: colorGray,
		}))
	}

	right := col.New(6).Add(
		text.New(doc.Title, props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Right,
			Color: colorPrimary, Top: 1,
		}),
	)
	for i, mr := range doc.Header.Meta {
		right.Add(text.New(mr.Label+" "+mr.Value, props.Text{
			Size: 8, Align: align.Right, Top: float64(9 + i*4), Color: colorGray,
		}))
	}

	height := 12 + 4*max(len(doc.From.Lines), len(doc.Header.Meta))
	return row.New(float64(height)).Add(left, right)
}

// partiesRow: bloques "Dari:" y "Kepada:" lado a lado.
func partiesRow(from, to document.PartyBlock) core.Row {
	block := func(b document.PartyBlock) core.Col {
		c := col.New(6).Add(
			text.New(b.Heading, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(b.Name, props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
		)
		for i, l := range b.Lines {
			c.Add(text.New(l, props.Text{Size: 8, Top: float64(11 + i*4), Color: colorGray}))
		}
		return c
	}
	height := 14 + 4*max(len(from.Lines), len(to.Lines))
	return row.New(float64(height)).Add(block(from), block(to))
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Deskripsi", 4, align.Left),
		h("Qty", 1, align.Center),
		h("Harga Satuan", 2, align.Right),
		h("Pajak", 1, align.Center),
		h("Diskon", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(items []document.ItemRow) []core.Row {
	cell := func(s string, size int, a align.Type, bold bool) core.Col {
		style := fontstyle.Normal
		if bold {
			style = fontstyle.Bold
		}
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Style: style,
		}))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			cell(it.Description, 4, align.Left, false),
			cell(it.Quantity, 1, align.Center, false),
			cell(it.UnitPrice, 2, align.Right, false),
			cell(it.TaxPercent, 1, align.Center, false),
			cell(it.Discount, 2, align.Right, false),
			cell(it.Total, 2, align.Right, true),
		))
	}
	return result
}

// summaryRows: bloque de resumen alineado a la derecha; la fila con
// Emphasis (el TOTAL) va en negrita y color primario.
func summaryRows(rows []document.SummaryRow) core.Row {
	labels := col.New(4)
	values := col.New(3)
	for i, r := range rows {
		top := float64(1 + i*5)
		pLabel := props.Text{Size: 9, Align: align.Right, Right: 2, Top: top, Style: fontstyle.Bold}
		pValue := props.Text{Size: 9, Align: align.Right, Right: 1, Top: top}
		if r.Emphasis {
			pLabel.Size, pValue.Size = 10, 10
			pLabel.Color, pValue.Color = colorPrimary, colorPrimary
			pValue.Style = fontstyle.Bold
		}
		labels.Add(text.New(r.Label, pLabel))
		values.Add(text.New(r.Value, pValue))
	}
	height := 4 + 5*len(rows)
	return row.New(float64(height)).Add(col.New(5), labels, values)
}

// notesRow: sección de notas, solo si existe.
func notesRow(n *document.NotesSection) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(n.Heading, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
			text.New(n.Body, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// footerRows: leyenda de agradecimiento centrada.
func footerRows(lines []string) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(5).Add(
			col.New(12).Add(text.New(l, props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			})),
		))
	}
	return result
}
