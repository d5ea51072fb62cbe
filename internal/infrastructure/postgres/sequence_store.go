package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/faktur-api/internal/domain/repository"
)

var (
	_ repository.SequenceStore       = (*SequenceStore)(nil)
	_ repository.SequenceIncrementer = (*SequenceStore)(nil)
)

// SequenceStore almacén de contadores sobre la tabla invoice_sequences.
// Implementa también el incremento atómico, así varios procesos pueden
// compartir la numeración sin perder números.
type SequenceStore struct {
	q Querier
}

// NewSequenceStore construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceStore(q Querier) *SequenceStore {
	return &SequenceStore{q: q}
}

// EnsureSchema crea la tabla de contadores si no existe.
func (s *SequenceStore) EnsureSchema(ctx context.Context) error {
	_, err := s.q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS invoice_sequences (
			key   TEXT PRIMARY KEY,
			value BIGINT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("crear tabla invoice_sequences: %w", err)
	}
	return nil
}

// Get devuelve el valor del contador y si la clave existe.
func (s *SequenceStore) Get(ctx context.Context, key string) (int64, bool, error) {
	var value int64
	err := s.q.QueryRow(ctx, `SELECT value FROM invoice_sequences WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("leer contador %s: %w", key, err)
	}
	return value, true, nil
}

// Set persiste el valor del contador (upsert).
func (s *SequenceStore) Set(ctx context.Context, key string, value int64) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO invoice_sequences (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		return fmt.Errorf("persistir contador %s: %w", key, err)
	}
	return nil
}

// Increment incrementa el contador en una sola sentencia y devuelve el valor
// nuevo. Atómico a nivel de fila: seguro entre procesos concurrentes.
func (s *SequenceStore) Increment(ctx context.Context, key string) (int64, error) {
	var value int64
	err := s.q.QueryRow(ctx, `
		INSERT INTO invoice_sequences (key, value) VALUES ($1, 1)
		ON CONFLICT (key) DO UPDATE SET value = invoice_sequences.value + 1
		RETURNING value`, key).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("incrementar contador %s: %w", key, err)
	}
	return value, nil
}

// Keys lista las claves que empiezan por el prefijo.
func (s *SequenceStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := s.q.Query(ctx, `SELECT key FROM invoice_sequences WHERE key LIKE $1 || '%'`, prefix)
	if err != nil {
		return nil, fmt.Errorf("listar contadores: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("leer clave de contador: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Delete elimina la clave; no es error que no exista.
func (s *SequenceStore) Delete(ctx context.Context, key string) error {
	_, err := s.q.Exec(ctx, `DELETE FROM invoice_sequences WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("eliminar contador %s: %w", key, err)
	}
	return nil
}
