package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/application/editor"
	"github.com/jhoicas/faktur-api/internal/application/export"
	"github.com/jhoicas/faktur-api/internal/application/numbering"
	"github.com/jhoicas/faktur-api/internal/domain/repository"
	"github.com/jhoicas/faktur-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/faktur-api/internal/infrastructure/pdf"
	"github.com/jhoicas/faktur-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/faktur-api/internal/interfaces/http"
	"github.com/jhoicas/faktur-api/pkg/config"
	"github.com/jhoicas/faktur-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén de contadores: PostgreSQL si hay base configurada, si no memoria.
	var store repository.SequenceStore
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()

		pgStore := postgres.NewSequenceStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("esquema de contadores")
		}
		store = pgStore
		log.Info().Msg("contadores de numeración en PostgreSQL")
	} else {
		store = memory.NewSequenceStore()
		log.Warn().Msg("sin base de datos configurada: contadores en memoria")
	}

	numbers := numbering.NewGenerator(store, cfg.Invoice.NumberPrefix)
	editorSvc := editor.NewService(numbers, decimal.NewFromInt(int64(cfg.Invoice.DefaultPPNRate)))

	// Arrancar con la factura de ejemplo, como el editor original.
	if err := editorSvc.LoadSample(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar factura de ejemplo")
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := export.NewPDFUseCase(editorSvc, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Faktur API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Editor: editorSvc,
		PDFUC:  pdfUC,
		Auth:   cfg.Auth,
		JWT:    cfg.JWT,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
