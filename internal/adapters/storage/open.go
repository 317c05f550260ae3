package storage

import (
	"context"
	"fmt"

	mem "petshop-orders/internal/adapters/storage/memory"
	pg "petshop-orders/internal/adapters/storage/postgres"
	rds "petshop-orders/internal/adapters/storage/redis"
	lite "petshop-orders/internal/adapters/storage/sqlite"
	"petshop-orders/internal/domain/orders"
	"petshop-orders/internal/platform/config"
)

// OpenOrdersCache construye el caché de pedidos según cfg.OrderCache.
// closeFn libera la conexión subyacente (no-op para memory/none).
// Con ORDER_CACHE=none devuelve cache nil: los pedidos no se guardan.
func OpenOrdersCache(ctx context.Context, cfg config.Config) (cache orders.Cache, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch cfg.OrderCache {
	case config.CacheNone:
		return nil, noop, nil

	case config.CacheMemory, "":
		return mem.NewOrdersCache(), noop, nil

	case config.CachePostgres:
		if cfg.DBDSN == "" {
			return nil, nil, fmt.Errorf("storage: ORDER_CACHE=postgres requires DB_DSN")
		}
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: open postgres: %w", err)
		}
		if err := pg.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return pg.NewOrdersCache(db), db.Close, nil

	case config.CacheSQLite:
		db, err := lite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return lite.NewOrdersCache(db), db.Close, nil

	case config.CacheRedis:
		client, err := rds.NewClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return rds.NewOrdersCache(client, cfg.RedisOrdersKey), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("storage: unknown ORDER_CACHE %q", cfg.OrderCache)
	}
}
