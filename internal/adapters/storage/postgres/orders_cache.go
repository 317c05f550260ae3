package postgres

import (
	"context"
	"database/sql"

	"petshop-orders/internal/domain/orders"
)

type OrdersCache struct {
	db *sql.DB
}

func NewOrdersCache(db *sql.DB) *OrdersCache {
	return &OrdersCache{db: db}
}

func (c *OrdersCache) Append(ctx context.Context, o orders.CachedOrder) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cached_orders (
			id, status,
			pet_name, pet_type, pet_breed, pet_age,
			service_id, service_name, service_price,
			owner_name, owner_phone, owner_email,
			preferred_date, preferred_time, observations,
			ordered_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		o.ID,
		string(o.Status),
		o.Pet.Name,
		o.Pet.Type,
		o.Pet.Breed,
		o.Pet.Age,
		o.Service.ID,
		o.Service.Name,
		o.Service.Price,
		o.Owner.Name,
		o.Owner.Phone,
		o.Owner.Email,
		o.Schedule.Date,
		o.Schedule.Time,
		o.Observations,
		o.Timestamp,
	)
	return err
}

// List devuelve los pedidos en orden de inserción.
func (c *OrdersCache) List(ctx context.Context) ([]orders.CachedOrder, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT
			id, status,
			pet_name, pet_type, pet_breed, pet_age,
			service_id, service_name, service_price,
			owner_name, owner_phone, owner_email,
			preferred_date, preferred_time, observations,
			ordered_at
		FROM cached_orders
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]orders.CachedOrder, 0)
	for rows.Next() {
		var o orders.CachedOrder
		var status string
		if err := rows.Scan(
			&o.ID,
			&status,
			&o.Pet.Name,
			&o.Pet.Type,
			&o.Pet.Breed,
			&o.Pet.Age,
			&o.Service.ID,
			&o.Service.Name,
			&o.Service.Price,
			&o.Owner.Name,
			&o.Owner.Phone,
			&o.Owner.Email,
			&o.Schedule.Date,
			&o.Schedule.Time,
			&o.Observations,
			&o.Timestamp,
		); err != nil {
			return nil, err
		}
		o.Status = orders.Status(status)
		out = append(out, o)
	}
	return out, rows.Err()
}
