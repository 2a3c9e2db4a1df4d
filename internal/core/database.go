// Package core holds the storage plumbing shared by the repositories.
package core

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chefbook/recipe-service/config"
)

// Connect opens a pgx connection pool against the configured database and
// verifies it with a ping.
func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}
