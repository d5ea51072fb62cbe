package editor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/faktur-api/internal/domain"
)

type jsonRaw = json.RawMessage

// snapshotVersion etiqueta de formato del respaldo JSON.
const snapshotVersion = "1.0"

// Snapshot serializa el agregado completo más la fecha de exportación y la
// versión de formato, listo para recargarlo después. Las claves desconocidas
// que venían en el último respaldo cargado se reemiten tal cual.
// Devuelve el contenido y un nombre de archivo sugerido.
func (s *Service) Snapshot() ([]byte, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]any, len(s.extra)+8)
	for k, v := range s.extra {
		out[k] = v
	}
	out["seller"] = s.inv.Seller
	out["customer"] = s.inv.Customer
	out["invoiceMeta"] = s.inv.Meta
	out["items"] = s.inv.Items
	out["settings"] = s.inv.Settings
	out["notes"] = s.inv.Notes
	out["exportDate"] = s.now().UTC().Format(time.RFC3339)
	out["version"] = snapshotVersion

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("editor: serializar respaldo: %w", err)
	}

	name := s.inv.Meta.InvoiceNumber
	if name == "" {
		name = "backup"
	}
	filename := fmt.Sprintf("invoice_%s_%s.json", name, s.now().UTC().Format("2006-01-02"))
	return data, filename, nil
}

// claves del respaldo que corresponden a campos del agregado.
var requiredKeys = []string{"seller", "customer", "items"}

// Load reemplaza el agregado con el contenido de un respaldo JSON.
// El formato se valida de forma mínima: deben existir las claves de primer
// nivel seller, customer e items; cualquier otra forma se rechaza con
// domain.ErrInvalidFormat. Las claves no reconocidas se conservan y se
// reemiten al exportar. Si la carga falla, el agregado queda intacto.
func (s *Service) Load(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}
	for _, k := range requiredKeys {
		if _, ok := raw[k]; !ok {
			return fmt.Errorf("%w: falta la clave %q", domain.ErrInvalidFormat, k)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Se trabaja sobre una copia: un fallo a mitad de la carga no debe dejar
	// el documento a medias.
	merged := s.inv.Clone()
	known := map[string]any{
		"seller":      &merged.Seller,
		"customer":    &merged.Customer,
		"invoiceMeta": &merged.Meta,
		"items":       &merged.Items,
		"settings":    &merged.Settings,
		"notes":       &merged.Notes,
	}

	extra := make(map[string]jsonRaw)
	for k, v := range raw {
		dst, ok := known[k]
		if !ok {
			extra[k] = v
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("%w: clave %q: %v", domain.ErrInvalidFormat, k, err)
		}
	}

	s.inv = merged
	s.extra = extra
	return nil
}
