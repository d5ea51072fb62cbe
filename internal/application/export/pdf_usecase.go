// Package export finaliza el documento: valida, deriva el árbol y lo entrega
// al generador de PDF externo. El generador es una caja negra que consume el
// documento terminado; sus fallas son reintentables y no afectan al agregado.
package export

import (
	"context"
	"fmt"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/internal/domain/document"
)

// DocumentPDFGenerator puerto del renderizador externo de PDF.
type DocumentPDFGenerator interface {
	Generate(ctx context.Context, doc *document.Document) ([]byte, error)
}

// PDFUseCase orquesta la exportación a PDF del documento único.
type PDFUseCase struct {
	editor    *editor.Service
	generator DocumentPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(editor *editor.Service, generator DocumentPDFGenerator) *PDFUseCase {
	return &PDFUseCase{editor: editor, generator: generator}
}

// DownloadInvoicePDF valida el documento, lo deriva y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotValid         si faltan campos obligatorios o hay líneas
//     con cantidad/precio negativos; la edición puede continuar y reintentar.
//   - error envuelto del generador si el renderizador externo falla; el
//     agregado y los cálculos no se ven afectados.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	if res := uc.editor.Validate(); !res.Valid {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrNotValid, res.Fields)
	}

	doc := uc.editor.Render()
	pdfBytes, err = uc.generator.Generate(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	name := uc.editor.Invoice().Meta.InvoiceNumber
	if name == "" {
		name = "invoice"
	}
	return pdfBytes, name + ".pdf", nil
}
