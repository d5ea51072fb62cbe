package export_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/export"
	"github.com/jhoicas/faktur-api/internal/application/numbering"
	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/internal/domain/document"
	"github.com/jhoicas/faktur-api/internal/infrastructure/memory"
)

// stubGenerator registra el documento recibido y devuelve bytes fijos.
type stubGenerator struct {
	doc  *document.Document
	fail error
}

func (g *stubGenerator) Generate(_ context.Context, doc *document.Document) ([]byte, error) {
	g.doc = doc
	if g.fail != nil {
		return nil, g.fail
	}
	return []byte("%PDF-stub"), nil
}

func newEditor(t *testing.T, withSample bool) *editor.Service {
	t.Helper()
	clock := func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	gen := numbering.NewGenerator(memory.NewSequenceStore(), "INVC").WithClock(clock)
	svc := editor.NewService(gen, decimal.NewFromInt(11)).WithClock(clock)
	if withSample {
		require.NoError(t, svc.LoadSample(context.Background()))
	}
	return svc
}

func TestDownloadInvoicePDF_OK(t *testing.T) {
	svc := newEditor(t, true)
	stub := &stubGenerator{}
	uc := export.NewPDFUseCase(svc, stub)

	pdf, filename, err := uc.DownloadInvoicePDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-stub"), pdf)
	assert.Equal(t, "INVC-20240305-001.pdf", filename)
	require.NotNil(t, stub.doc, "el generador debe recibir el documento derivado")
	assert.Equal(t, "INVOICE", stub.doc.Title)
}

// Un documento inválido no llega al generador.
func TestDownloadInvoicePDF_FacturaInvalida(t *testing.T) {
	svc := newEditor(t, false) // agregado vacío: sin partes ni ítems
	stub := &stubGenerator{}
	uc := export.NewPDFUseCase(svc, stub)

	_, _, err := uc.DownloadInvoicePDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotValid)
	assert.Nil(t, stub.doc, "no debe invocarse el generador con un documento inválido")
}

// La falla del renderizador externo se propaga y se puede reintentar.
func TestDownloadInvoicePDF_FallaDelGenerador(t *testing.T) {
	svc := newEditor(t, true)
	boom := errors.New("renderer no disponible")
	uc := export.NewPDFUseCase(svc, &stubGenerator{fail: boom})

	_, _, err := uc.DownloadInvoicePDF(context.Background())
	assert.ErrorIs(t, err, boom)

	// El agregado sigue intacto y el reintento funciona.
	ok := export.NewPDFUseCase(svc, &stubGenerator{})
	_, _, err = ok.DownloadInvoicePDF(context.Background())
	assert.NoError(t, err)
}
