package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL idempotente del esquema completo. Se aplica al arrancar; no hay
// migraciones versionadas todavía porque el esquema es estable.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                UUID PRIMARY KEY,
		name              VARCHAR(255) NOT NULL,
		email             VARCHAR(255) NOT NULL,
		password_hash     VARCHAR(255) NOT NULL,
		role              VARCHAR(20)  NOT NULL DEFAULT 'customer',
		email_verified_at TIMESTAMPTZ,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT users_role_check CHECK (role IN ('admin', 'customer'))
	)`,
	// Unicidad case-insensitive: el email se guarda en minúsculas y además el
	// índice cubre cualquier fila histórica con mayúsculas.
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_unique ON users (lower(email))`,

	`CREATE TABLE IF NOT EXISTS products (
		id           UUID PRIMARY KEY,
		external_id  INTEGER,
		title        VARCHAR(255) NOT NULL,
		description  TEXT NOT NULL,
		price        NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		category     VARCHAR(100) NOT NULL,
		image        VARCHAR(500),
		rating_rate  NUMERIC(3,2) CHECK (rating_rate >= 0 AND rating_rate <= 5),
		rating_count INTEGER CHECK (rating_count >= 0),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS products_external_id_unique ON products (external_id) WHERE external_id IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS products_category_idx ON products (category)`,

	`CREATE TABLE IF NOT EXISTS access_tokens (
		id           UUID PRIMARY KEY,
		user_id      UUID NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		name         VARCHAR(100) NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_used_at TIMESTAMPTZ
	)`,
	`CREATE INDEX IF NOT EXISTS access_tokens_user_id_idx ON access_tokens (user_id)`,
}

// Migrate aplica el esquema. Seguro de ejecutar en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
