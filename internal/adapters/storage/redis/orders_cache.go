package redis

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"petshop-orders/internal/domain/orders"
)

// DefaultKey es la clave fija de la lista de pedidos.
const DefaultKey = "petshopOrders"

// OrdersCache guarda los pedidos como una lista Redis (RPUSH/LRANGE).
type OrdersCache struct {
	client *redis.Client
	key    string
}

func NewOrdersCache(client *redis.Client, key string) *OrdersCache {
	if key == "" {
		key = DefaultKey
	}
	return &OrdersCache{client: client, key: key}
}

// NewClient crea el cliente y verifica la conexión.
func NewClient(ctx context.Context, addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis: ping %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *OrdersCache) Append(ctx context.Context, o orders.CachedOrder) error {
	b, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("redis: marshal order: %w", err)
	}
	if err := c.client.RPush(ctx, c.key, b).Err(); err != nil {
		return fmt.Errorf("redis: rpush %s: %w", c.key, err)
	}
	return nil
}

func (c *OrdersCache) List(ctx context.Context) ([]orders.CachedOrder, error) {
	raw, err := c.client.LRange(ctx, c.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: lrange %s: %w", c.key, err)
	}

	out := make([]orders.CachedOrder, 0, len(raw))
	for i, item := range raw {
		var o orders.CachedOrder
		if err := json.Unmarshal([]byte(item), &o); err != nil {
			return nil, fmt.Errorf("redis: decode item %d: %w", i, err)
		}
		out = append(out, o)
	}
	return out, nil
}
