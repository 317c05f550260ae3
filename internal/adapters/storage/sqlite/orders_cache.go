package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"petshop-orders/internal/domain/orders"
)

// OrdersCache guarda cada pedido como JSON, equivalente al localStorage de
// la página pero en un archivo local.
type OrdersCache struct {
	db  *sql.DB
	now func() time.Time
}

func NewOrdersCache(db *sql.DB) *OrdersCache {
	return &OrdersCache{db: db, now: time.Now}
}

func (c *OrdersCache) Append(ctx context.Context, o orders.CachedOrder) error {
	payload, err := json.Marshal(o.Order)
	if err != nil {
		return fmt.Errorf("sqlite: marshal order: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO cached_orders (id, status, payload, created_at) VALUES (?, ?, ?, ?)`,
		o.ID, string(o.Status), string(payload), c.now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

func (c *OrdersCache) List(ctx context.Context) ([]orders.CachedOrder, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, status, payload FROM cached_orders ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]orders.CachedOrder, 0)
	for rows.Next() {
		var (
			o       orders.CachedOrder
			status  string
			payload string
		)
		if err := rows.Scan(&o.ID, &status, &payload); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payload), &o.Order); err != nil {
			return nil, fmt.Errorf("sqlite: decode order %d: %w", o.ID, err)
		}
		o.Status = orders.Status(status)
		out = append(out, o)
	}
	return out, rows.Err()
}
