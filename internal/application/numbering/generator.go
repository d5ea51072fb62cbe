// Package numbering genera los números de factura con secuencia diaria
// persistente: PREFIX-YYYYMMDD-NNN.
package numbering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/faktur-api/internal/domain/repository"
)

// KeyPrefix prefijo de las claves del almacén: sequence_<YYYYMMDD>.
const KeyPrefix = "sequence_"

// retentionDays días que se conservan los contadores antes de purgarlos.
const retentionDays = 30

const dateLayout = "20060102"

// Generator emite números de factura con secuencia diaria. La unicidad solo
// está garantizada dentro de un mismo día calendario y mientras el almacén
// de contadores sobreviva; la secuencia reinicia en 1 cada día.
type Generator struct {
	store  repository.SequenceStore
	prefix string
	now    func() time.Time
}

// NewGenerator construye el generador con el almacén inyectado.
func NewGenerator(store repository.SequenceStore, prefix string) *Generator {
	return &Generator{store: store, prefix: prefix, now: time.Now}
}

// WithClock reemplaza el reloj (para tests) y devuelve el mismo generador.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Next incrementa y persiste el contador del día y devuelve el identificador
// formateado, p. ej. INVC-20240305-001. Como efecto adicional de cada llamada
// purga los contadores con más de 30 días.
func (g *Generator) Next(ctx context.Context) (string, error) {
	dateStr := g.now().UTC().Format(dateLayout)
	key := KeyPrefix + dateStr

	var seq int64
	if inc, ok := g.store.(repository.SequenceIncrementer); ok {
		n, err := inc.Increment(ctx, key)
		if err != nil {
			return "", fmt.Errorf("numbering: incrementar %s: %w", key, err)
		}
		seq = n
	} else {
		current, _, err := g.store.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("numbering: leer %s: %w", key, err)
		}
		seq = current + 1
		if err := g.store.Set(ctx, key, seq); err != nil {
			return "", fmt.Errorf("numbering: persistir %s: %w", key, err)
		}
	}

	// Purga de contadores viejos: mejor esfuerzo, no bloquea la emisión.
	g.purgeOld(ctx)

	return fmt.Sprintf("%s-%s-%03d", g.prefix, dateStr, seq), nil
}

// purgeOld elimina los contadores cuya fecha (comparación lexicográfica del
// sufijo YYYYMMDD) es anterior al corte de retención.
func (g *Generator) purgeOld(ctx context.Context) {
	cutoff := g.now().UTC().AddDate(0, 0, -retentionDays).Format(dateLayout)

	keys, err := g.store.Keys(ctx, KeyPrefix)
	if err != nil {
		return
	}
	for _, key := range keys {
		dateStr := strings.TrimPrefix(key, KeyPrefix)
		if dateStr < cutoff {
			_ = g.store.Delete(ctx, key)
		}
	}
}
