package storage

import (
	"context"
	"fmt"
)

const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id      INTEGER NOT NULL,
    package      TEXT NOT NULL,
    coin_details TEXT NOT NULL,
    status       TEXT NOT NULL DEFAULT 'pending',
    website_id   TEXT,
    website_link TEXT,
    sol_amount   REAL NOT NULL,
    created_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
`

// InitSchema creates the orders table if it does not exist yet.
func (s *storageImpl) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, ordersSchema); err != nil {
		return fmt.Errorf("init orders schema: %w", err)
	}
	return nil
}
