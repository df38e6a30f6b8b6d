package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS contracts (
	id             BIGSERIAL PRIMARY KEY,
	user_id        BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	property_label TEXT NOT NULL,
	owner_name     TEXT NOT NULL,
	tenant_name    TEXT NOT NULL,
	start_date     DATE NOT NULL,
	end_date       DATE NOT NULL,
	amount         NUMERIC(14, 2) NOT NULL CHECK (amount > 0),
	currency       TEXT NOT NULL CHECK (currency IN ('ARS', 'USD')),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_contracts_user_end_date ON contracts (user_id, end_date);
`

// Migrate creates the tables the backend needs when they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	return nil
}
