package entity

import "github.com/jhoicas/faktur-api/internal/domain"

// Party representa una de las dos partes del documento (emisor o cliente).
// Todos los campos son texto libre; un campo ausente simplemente no se
// presenta en el documento.
type Party struct {
	CompanyName   string `json:"companyName"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Address       string `json:"address"`
	NPWP          string `json:"npwp,omitempty"` // identificación tributaria (Indonesia)
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LogoBase64    string `json:"logoBase64,omitempty"` // solo lo usa el emisor (data URL)
}

// PartyField clave lógica de un campo de Party, para actualizaciones
// campo a campo desde el editor.
type PartyField string

const (
	PartyCompanyName   PartyField = "companyName"
	PartyContactPerson PartyField = "contactPerson"
	PartyAddress       PartyField = "address"
	PartyNPWP          PartyField = "npwp"
	PartyPhone         PartyField = "phone"
	PartyEmail         PartyField = "email"
	PartyLogoBase64    PartyField = "logoBase64"
)

// Apply actualiza el campo identificado por la clave lógica.
// Clave desconocida retorna domain.ErrUnknownField sin tocar el struct.
func (p *Party) Apply(field PartyField, value string) error {
	switch field {
	case PartyCompanyName:
		p.CompanyName = value
	case PartyContactPerson:
		p.ContactPerson = value
	case PartyAddress:
		p.Address = value
	case PartyNPWP:
		p.NPWP = value
	case PartyPhone:
		p.Phone = value
	case PartyEmail:
		p.Email = value
	case PartyLogoBase64:
		p.LogoBase64 = value
	default:
		return domain.ErrUnknownField
	}
	return nil
}
