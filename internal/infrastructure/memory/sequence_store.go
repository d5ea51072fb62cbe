// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria, para el modo de proceso único y para los tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/faktur-api/internal/domain/repository"
)

var _ repository.SequenceStore = (*SequenceStore)(nil)

// SequenceStore almacén de contadores en memoria, protegido por mutex.
// Los contadores no sobreviven al proceso; la unicidad de los números solo
// vale mientras el proceso viva (limitación documentada del diseño).
type SequenceStore struct {
	mu     sync.Mutex
	values map[string]int64
}

// NewSequenceStore construye el almacén vacío.
func NewSequenceStore() *SequenceStore {
	return &SequenceStore{values: make(map[string]int64)}
}

// Get devuelve el valor del contador y si la clave existe.
func (s *SequenceStore) Get(_ context.Context, key string) (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set persiste el valor para la clave.
func (s *SequenceStore) Set(_ context.Context, key string, value int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Keys lista las claves con el prefijo dado.
func (s *SequenceStore) Keys(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for k := range s.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Delete elimina la clave; no es error que no exista.
func (s *SequenceStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
