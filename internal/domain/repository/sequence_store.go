package repository

import "context"

// SequenceStore define el puerto de persistencia para los contadores de
// numeración diaria. Es una capacidad inyectada: el generador de números no
// conoce el almacén concreto (memoria, Postgres) y así se prueba sin uno real.
type SequenceStore interface {
	// Get devuelve el valor del contador y si la clave existe.
	Get(ctx context.Context, key string) (int64, bool, error)
	// Set persiste el valor del contador para la clave.
	Set(ctx context.Context, key string, value int64) error
	// Keys lista las claves que empiezan por el prefijo.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Delete elimina la clave; no es error que no exista.
	Delete(ctx context.Context, key string) error
}

// SequenceIncrementer incremento atómico opcional. Un almacén compartido
// entre procesos debe implementarlo para no perder números de secuencia;
// el generador lo prefiere sobre el ciclo leer-modificar-escribir.
type SequenceIncrementer interface {
	Increment(ctx context.Context, key string) (int64, error)
}
