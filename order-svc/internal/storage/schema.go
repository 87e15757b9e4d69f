package storage

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS menu_items (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC(10,2) NOT NULL DEFAULT 0,
		price_from BOOLEAN NOT NULL DEFAULT FALSE,
		category_id TEXT,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		is_pizza BOOLEAN NOT NULL DEFAULT FALSE,
		variation_group_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS variations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		additional_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		available BOOLEAN NOT NULL DEFAULT TRUE,
		category_ids TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS variation_groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		min_required INTEGER NOT NULL DEFAULT 0,
		max_allowed INTEGER NOT NULL DEFAULT 1,
		variation_ids TEXT[] NOT NULL DEFAULT '{}',
		custom_message TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		address TEXT NOT NULL,
		payment_method TEXT NOT NULL,
		observations TEXT,
		status TEXT NOT NULL,
		payment_status TEXT NOT NULL,
		total NUMERIC(10,2) NOT NULL,
		discount NUMERIC(10,2) NOT NULL DEFAULT 0,
		coupon_code TEXT,
		amount_due NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS orders_customer_phone_idx ON orders (customer_phone)`,
	`CREATE INDEX IF NOT EXISTS orders_created_at_idx ON orders (created_at)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id),
		position INTEGER NOT NULL,
		menu_item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		quantity INTEGER NOT NULL,
		selected_variations JSONB,
		is_half_pizza BOOLEAN NOT NULL DEFAULT FALSE,
		combination JSONB,
		price_from BOOLEAN NOT NULL DEFAULT FALSE,
		subtotal NUMERIC(10,2) NOT NULL,
		PRIMARY KEY (order_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS coupons (
		id SERIAL PRIMARY KEY,
		code TEXT NOT NULL,
		type TEXT NOT NULL,
		value NUMERIC(10,2) NOT NULL,
		min_order_value NUMERIC(10,2) NOT NULL DEFAULT 0,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		expires_at TIMESTAMPTZ,
		usage_limit INTEGER,
		usage_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS coupons_code_upper_idx ON coupons (UPPER(code))`,
}

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

func firstLine(stmt string) string {
	for i, r := range stmt {
		if r == '\n' || r == '(' {
			return stmt[:i]
		}
	}
	return stmt
}
