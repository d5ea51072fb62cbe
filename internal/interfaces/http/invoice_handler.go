package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktur-api/internal/application/dto"
	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/domain"
	"github.com/jhoicas/faktur-api/internal/domain/entity"
)

// InvoiceHandler maneja la edición de la factura en curso (protegido).
type InvoiceHandler struct {
	editor *editor.Service
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(svc *editor.Service) *InvoiceHandler {
	return &InvoiceHandler{editor: svc}
}

// fieldError mapea los errores de campo del dominio al cuerpo HTTP.
func fieldError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_FIELD", Message: "campo desconocido"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea no encontrada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// Get devuelve el estado completo de la factura en edición.
// GET /api/invoice
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	inv := h.editor.Invoice()
	return c.JSON(inv)
}

// UpdateSeller actualiza un campo del emisor.
// PATCH /api/invoice/seller
func (h *InvoiceHandler) UpdateSeller(c *fiber.Ctx) error {
	in, ok := parseFieldUpdate(c)
	if !ok {
		return nil
	}
	if err := h.editor.UpdateSeller(entity.PartyField(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// UpdateCustomer actualiza un campo del receptor.
// PATCH /api/invoice/customer
func (h *InvoiceHandler) UpdateCustomer(c *fiber.Ctx) error {
	in, ok := parseFieldUpdate(c)
	if !ok {
		return nil
	}
	if err := h.editor.UpdateCustomer(entity.PartyField(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// UpdateMeta actualiza un metadato del documento.
// PATCH /api/invoice/meta
func (h *InvoiceHandler) UpdateMeta(c *fiber.Ctx) error {
	in, ok := parseFieldUpdate(c)
	if !ok {
		return nil
	}
	if err := h.editor.UpdateMeta(entity.MetaField(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// UpdateSettings actualiza un parámetro de cálculo.
// PATCH /api/invoice/settings
func (h *InvoiceHandler) UpdateSettings(c *fiber.Ctx) error {
	in, ok := parseFieldUpdate(c)
	if !ok {
		return nil
	}
	if err := h.editor.UpdateSettings(entity.SettingsField(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// UpdateNotes reemplaza el bloque de notas completo.
// PUT /api/invoice/notes
func (h *InvoiceHandler) UpdateNotes(c *fiber.Ctx) error {
	var in dto.NotesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.editor.UpdateNotes(in.Notes)
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// AddItem agrega una línea nueva con valores por defecto.
// POST /api/invoice/items
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	it := h.editor.AddItem()
	return c.Status(fiber.StatusCreated).JSON(dto.ItemCreatedResponse{ID: string(it.ID)})
}

// UpdateItem actualiza un campo de la línea indicada.
// PATCH /api/invoice/items/:id
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	in, ok := parseFieldUpdate(c)
	if !ok {
		return nil
	}
	if err := h.editor.UpdateItem(entity.ItemID(id), entity.ItemField(in.Field), in.Value); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "actualizado"})
}

// RemoveItem elimina la línea indicada preservando el orden de las demás.
// DELETE /api/invoice/items/:id
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	if err := h.editor.RemoveItem(entity.ItemID(id)); err != nil {
		return fieldError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "eliminado"})
}

// Summary devuelve los totales recalculados con formato de presentación.
// GET /api/invoice/summary
func (h *InvoiceHandler) Summary(c *fiber.Ctx) error {
	sum := h.editor.Summary()
	return c.JSON(dto.SummaryResponse{
		Subtotal: sum.Subtotal,
		Discount: sum.Discount,
		PPN:      sum.PPN,
		Shipping: sum.Shipping,
		Total:    sum.Total,
		Totals: dto.TotalsResponse{
			Subtotal:       sum.Totals.Subtotal.String(),
			DiscountAmount: sum.Totals.DiscountAmount.String(),
			TaxableBase:    sum.Totals.TaxableBase.String(),
			PPN:            sum.Totals.PPN.String(),
			Shipping:       sum.Totals.Shipping.String(),
			GrandTotal:     sum.Totals.GrandTotal.String(),
		},
	})
}

// Validate ejecuta la validación de emisión sin bloquear la edición.
// GET /api/invoice/validate
func (h *InvoiceHandler) Validate(c *fiber.Ctx) error {
	res := h.editor.Validate()
	return c.JSON(dto.ValidateResponse{Valid: res.Valid, Fields: res.Fields})
}

// parseFieldUpdate lee y valida el cuerpo field/value común a los PATCH.
// Si el cuerpo es inválido escribe la respuesta de error y devuelve ok=false.
func parseFieldUpdate(c *fiber.Ctx) (in dto.FieldUpdateRequest, ok bool) {
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return in, false
	}
	if in.Field == "" {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "field es requerido"})
		return in, false
	}
	return in, true
}
