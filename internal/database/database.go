package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// DB wraps the connection pool shared by all repositories
type DB struct {
	Pool *pgxpool.Pool
}

// schema creates the tables the repositories use. Each statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS client (
		id          BIGSERIAL PRIMARY KEY,
		owner       BIGINT NOT NULL,
		client_name TEXT NOT NULL,
		spouse_name TEXT NOT NULL DEFAULT '',
		married     BOOLEAN NOT NULL DEFAULT FALSE,
		created     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS client_owner_idx ON client (owner)`,
	`CREATE TABLE IF NOT EXISTS client_document (
		client_id BIGINT NOT NULL REFERENCES client (id) ON DELETE CASCADE,
		kind      TEXT NOT NULL,
		body      JSONB NOT NULL,
		updated   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (client_id, kind)
	)`,
}

// New opens a pool, verifies it with a ping and applies the schema
func New(ctx context.Context, pgURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, pgURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{Pool: pool}
	if err := db.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	log.Info("Connected to database")
	return db, nil
}

// EnsureSchema creates any missing tables
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// Close releases all pooled connections
func (db *DB) Close() {
	db.Pool.Close()
}
