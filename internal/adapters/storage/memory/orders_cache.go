package memory

import (
	"context"
	"sync"

	"petshop-orders/internal/domain/orders"
)

type ordersCache struct {
	mu    sync.RWMutex
	items []orders.CachedOrder
}

func NewOrdersCache() orders.Cache {
	return &ordersCache{}
}

func (c *ordersCache) Append(ctx context.Context, o orders.CachedOrder) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, o)
	return nil
}

func (c *ordersCache) List(ctx context.Context) ([]orders.CachedOrder, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]orders.CachedOrder, len(c.items))
	copy(out, c.items)
	return out, nil
}
