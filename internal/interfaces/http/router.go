package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/export"
	"github.com/jhoicas/faktur-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Editor *editor.Service
	PDFUC  *export.PDFUseCase
	Auth   config.AuthConfig
	JWT    config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.Auth, deps.JWT)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Factura en edición (protegido)
	inv := protected.Group("/invoice")
	invoiceHandler := NewInvoiceHandler(deps.Editor)
	inv.Get("/", invoiceHandler.Get)
	inv.Patch("/seller", invoiceHandler.UpdateSeller)
	inv.Patch("/customer", invoiceHandler.UpdateCustomer)
	inv.Patch("/meta", invoiceHandler.UpdateMeta)
	inv.Patch("/settings", invoiceHandler.UpdateSettings)
	inv.Put("/notes", invoiceHandler.UpdateNotes)
	inv.Post("/items", invoiceHandler.AddItem)
	inv.Patch("/items/:id", invoiceHandler.UpdateItem)
	inv.Delete("/items/:id", invoiceHandler.RemoveItem)
	inv.Get("/summary", invoiceHandler.Summary)
	inv.Get("/validate", invoiceHandler.Validate)

	// Documento derivado y respaldos (protegido)
	documentHandler := NewDocumentHandler(deps.Editor, deps.PDFUC)
	inv.Get("/document", documentHandler.Document)
	inv.Get("/pdf", documentHandler.PDF)
	inv.Get("/export", documentHandler.Export)
	inv.Post("/import", documentHandler.Import)
	inv.Post("/reset", documentHandler.Reset)
	inv.Post("/sample", documentHandler.Sample)
}
