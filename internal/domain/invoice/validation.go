package invoice

import (
	"strings"

	"github.com/jhoicas/faktur-api/internal/domain/entity"
)

// ValidationResult resultado de la validación previa a la emisión.
// Valid en false no bloquea la edición; solo impide finalizar el documento
// (exportar el PDF) hasta corregir los campos listados.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Fields []string `json:"fields,omitempty"`
}

// ValidateForIssue verifica los campos obligatorios del documento y que
// ninguna línea tenga cantidad o precio negativos. Se exige al menos una
// línea para poder emitir.
func ValidateForIssue(inv *entity.Invoice) ValidationResult {
	var fields []string

	required := []struct {
		name  string
		value string
	}{
		{"seller.companyName", inv.Seller.CompanyName},
		{"seller.address", inv.Seller.Address},
		{"customer.companyName", inv.Customer.CompanyName},
		{"customer.contactPerson", inv.Customer.ContactPerson},
		{"customer.address", inv.Customer.Address},
		{"invoiceMeta.invoiceDate", inv.Meta.InvoiceDate},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			fields = append(fields, f.name)
		}
	}

	if len(inv.Items) == 0 {
		fields = append(fields, "items")
	} else {
		for _, it := range inv.Items {
			if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
				fields = append(fields, "items")
				break
			}
		}
	}

	return ValidationResult{Valid: len(fields) == 0, Fields: fields}
}
