package document

import (
	"strings"

	"github.com/jhoicas/faktur-api/internal/domain/entity"
	invcalc "github.com/jhoicas/faktur-api/internal/domain/invoice"
	"github.com/jhoicas/faktur-api/pkg/money"
)

// Textos fijos del documento (indonesio, como el producto original).
const (
	placeholderSellerName   = "Nama Perusahaan"
	placeholderSellerAddr   = "Alamat Perusahaan"
	placeholderCustomerName = "Nama Pelanggan"
	placeholderCustomerAddr = "Alamat Pelanggan"
	placeholderItem         = "Item"
)

var footerLines = []string{
	"Terima kasih atas kepercayaan Anda kepada kami.",
	"Pembayaran mohon dilakukan sesuai dengan termin yang telah disepakati.",
}

// Render deriva el documento imprimible del estado actual del agregado.
// Es una función pura: no muta la factura y con la misma entrada produce
// siempre el mismo árbol, así que es seguro llamarla en cada edición.
func Render(inv *entity.Invoice) *Document {
	totals := invcalc.Calculate(inv)

	doc := &Document{
		Title:  "INVOICE",
		Header: renderHeader(inv),
		From:   renderParty("Dari:", inv.Seller, placeholderSellerName, placeholderSellerAddr),
		To:     renderParty("Kepada:", inv.Customer, placeholderCustomerName, placeholderCustomerAddr),
		Items:  renderItems(inv.Items),
		Summary: renderSummary(inv.Settings, totals),
		Footer:  footerLines,
	}

	if notes := strings.TrimSpace(inv.Notes); notes != "" {
		doc.Notes = &NotesSection{Heading: "Catatan:", Body: inv.Notes}
	}
	return doc
}

func renderHeader(inv *entity.Invoice) Header {
	meta := []MetaRow{
		{Label: "No. Invoice:", Value: inv.Meta.InvoiceNumber},
		{Label: "Tanggal:", Value: money.FormatDateID(inv.Meta.InvoiceDate)},
	}
	if inv.Meta.DueDate != "" {
		meta = append(meta, MetaRow{Label: "Jatuh Tempo:", Value: money.FormatDateID(inv.Meta.DueDate)})
	}
	if inv.Meta.PaymentTerms != "" {
		meta = append(meta, MetaRow{Label: "Termin:", Value: inv.Meta.PaymentTerms})
	}
	return Header{LogoDataURL: inv.Seller.LogoBase64, Meta: meta}
}

// renderParty arma el bloque de una parte. Nombre y dirección ausentes se
// presentan con texto de relleno (default presentacional, no validación);
// los campos opcionales se omiten por completo cuando están vacíos.
func renderParty(heading string, p entity.Party, nameDefault, addrDefault string) PartyBlock {
	name := p.CompanyName
	if name == "" {
		name = nameDefault
	}
	addr := p.Address
	if addr == "" {
		addr = addrDefault
	}

	var lines []string
	if p.ContactPerson != "" {
		lines = append(lines, "Attn: "+p.ContactPerson)
	}
	lines = append(lines, addr)
	if p.Phone != "" {
		lines = append(lines, "Tel: "+p.Phone)
	}
	if p.Email != "" {
		lines = append(lines, "Email: "+p.Email)
	}
	if p.NPWP != "" {
		lines = append(lines, "NPWP: "+p.NPWP)
	}
	return PartyBlock{Heading: heading, Name: name, Lines: lines}
}

func renderItems(items []entity.LineItem) []ItemRow {
	rows := make([]ItemRow, 0, len(items))
	for _, it := range items {
		desc := it.Description
		if desc == "" {
			desc = placeholderItem
		}
		rows = append(rows, ItemRow{
			Description: desc,
			Quantity:    it.Quantity.String(),
			UnitPrice:   money.FormatRupiah(it.UnitPrice),
			TaxPercent:  it.TaxRate.String() + "%",
			Discount:    money.FormatRupiah(it.Discount),
			Total:       money.FormatRupiah(invcalc.ItemTotal(it)),
		})
	}
	return rows
}

func renderSummary(s entity.Settings, totals invcalc.Totals) []SummaryRow {
	rows := []SummaryRow{
		{Label: "Subtotal:", Value: money.FormatRupiah(totals.Subtotal)},
	}
	if totals.DiscountAmount.IsPositive() {
		rows = append(rows, SummaryRow{
			Label: "Diskon Global:",
			Value: "(" + money.FormatRupiah(totals.DiscountAmount) + ")",
		})
	}
	if s.EnablePPN {
		rows = append(rows, SummaryRow{
			Label: "PPN " + s.PPNRate.String() + "%:",
			Value: money.FormatRupiah(totals.PPN),
		})
	}
	if totals.Shipping.IsPositive() {
		rows = append(rows, SummaryRow{
			Label: "Ongkos Kirim:",
			Value: money.FormatRupiah(totals.Shipping),
		})
	}
	rows = append(rows, SummaryRow{
		Label:    "TOTAL:",
		Value:    money.FormatRupiah(totals.GrandTotal),
		Emphasis: true,
	})
	return rows
}
