package orders

import "context"

// Cache es el caché local de pedidos confirmados: una lista ordenada,
// solo append, bajo una clave fija.
type Cache interface {
	Append(ctx context.Context, o CachedOrder) error
	List(ctx context.Context) ([]CachedOrder, error)
}
