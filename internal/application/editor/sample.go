package editor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/faktur-api/internal/domain/entity"
)

// LoadSample carga el juego de datos de demostración con número de factura
// recién generado, fecha de hoy y vencimiento a 30 días.
func (s *Service) LoadSample(ctx context.Context) error {
	number, err := s.numbers.Next(ctx)
	if err != nil {
		return fmt.Errorf("editor: generar número de factura: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().UTC()
	inv := entity.NewInvoice(s.ppnRate)
	inv.Seller = entity.Party{
		CompanyName: "PT. Example Indonesia",
		Address:     "Jl. Contoh No. 123, Jakarta Selatan 12345",
		NPWP:        "01.234.567.8-901.000",
		Phone:       "+62 21 1234 5678",
		Email:       "info@example.co.id",
	}
	inv.Customer = entity.Party{
		CompanyName:   "CV. Client Baik",
		ContactPerson: "John Doe",
		Address:       "Jl. Customer 456, Bandung 40123",
		Email:         "john@clientbaik.com",
		Phone:         "+62 22 8765 4321",
	}
	inv.Meta = entity.InvoiceMeta{
		InvoiceNumber: number,
		InvoiceDate:   today.Format("2006-01-02"),
		DueDate:       today.AddDate(0, 0, 30).Format("2006-01-02"),
		PaymentTerms:  "Net 30",
	}
	inv.Items = []entity.LineItem{
		sampleItem("Website Development - Landing Page", 1, 5_000_000, 0),
		sampleItem("SEO Optimization Package", 3, 1_500_000, 250_000),
		sampleItem("Content Management Training", 2, 750_000, 0),
	}
	inv.Settings.EnablePPN = true
	inv.Settings.ShippingCost = decimal.NewFromInt(50_000)
	inv.Notes = "Terima kasih atas kepercayaan Anda. Pembayaran mohon dilakukan " +
		"sesuai dengan termin yang telah disepakati."

	s.inv = inv
	s.extra = nil
	return nil
}

func sampleItem(desc string, qty, price, discount int64) entity.LineItem {
	it := entity.NewLineItem()
	it.Description = desc
	it.Quantity = decimal.NewFromInt(qty)
	it.UnitPrice = decimal.NewFromInt(price)
	it.Discount = decimal.NewFromInt(discount)
	return it
}
