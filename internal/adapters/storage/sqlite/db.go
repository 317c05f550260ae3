package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cached_orders (
	seq             INTEGER PRIMARY KEY AUTOINCREMENT,
	id              INTEGER NOT NULL,
	status          TEXT NOT NULL DEFAULT 'pending',
	payload         TEXT NOT NULL,
	created_at      TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS cached_orders_id_idx ON cached_orders (id);
`

// Open abre (o crea) el archivo SQLite y asegura el esquema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", path, err)
	}
	// Un solo writer; SQLite serializa de todas formas.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: schema: %w", err)
	}
	return db, nil
}
