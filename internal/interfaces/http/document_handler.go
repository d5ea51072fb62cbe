package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktur-api/internal/application/dto"
	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/export"
	"github.com/jhoicas/faktur-api/internal/domain"
)

// DocumentHandler maneja la derivación del documento, el PDF y los
// respaldos JSON (protegido).
type DocumentHandler struct {
	editor *editor.Service
	pdfUC  *export.PDFUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(svc *editor.Service, pdfUC *export.PDFUseCase) *DocumentHandler {
	return &DocumentHandler{editor: svc, pdfUC: pdfUC}
}

// Document devuelve el árbol imprimible derivado del estado actual.
// GET /api/invoice/document
func (h *DocumentHandler) Document(c *fiber.Ctx) error {
	return c.JSON(h.editor.Render())
}

// PDF valida, deriva el documento y lo entrega como adjunto PDF.
// GET /api/invoice/pdf
func (h *DocumentHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.DownloadInvoicePDF(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotValid) {
			res := h.editor.Validate()
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.FieldsErrorResponse{
				Code:    "VALIDATION",
				Message: "faltan campos obligatorios para emitir",
				Fields:  res.Fields,
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "RENDERER", Message: "el generador de PDF falló; reintente"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Export entrega el respaldo JSON del estado completo como adjunto.
// GET /api/invoice/export
func (h *DocumentHandler) Export(c *fiber.Ctx) error {
	data, filename, err := h.editor.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Import reemplaza el estado con un respaldo JSON. Si el respaldo es
// inválido el estado actual queda intacto.
// POST /api/invoice/import
func (h *DocumentHandler) Import(c *fiber.Ctx) error {
	if err := h.editor.Load(c.Body()); err != nil {
		if errors.Is(err, domain.ErrInvalidFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "formato de archivo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "respaldo cargado"})
}

// Reset descarta el documento y arranca uno vacío con número nuevo.
// POST /api/invoice/reset
func (h *DocumentHandler) Reset(c *fiber.Ctx) error {
	if err := h.editor.Reset(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ResetResponse{InvoiceNumber: h.editor.Invoice().Meta.InvoiceNumber})
}

// Sample carga la factura de ejemplo para demos.
// POST /api/invoice/sample
func (h *DocumentHandler) Sample(c *fiber.Ctx) error {
	if err := h.editor.LoadSample(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ResetResponse{InvoiceNumber: h.editor.Invoice().Meta.InvoiceNumber})
}
