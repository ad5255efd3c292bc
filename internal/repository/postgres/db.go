package postgres

import (
	"context"
	"errors"
	"fmt"

	"acoach/coach-api/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx connection pool and verifies it with a ping.
// The caller owns the pool and is responsible for closing it.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// wrapError converts backend errors into repository.StorageError so the
// layers above stay free of driver types. Postgres errors keep their
// condition code (unique violations surface as "23505"); anything else
// passes through unchanged.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &repository.StorageError{
			Message: pgErr.Message,
			Details: pgErr.Detail,
			Code:    pgErr.Code,
		}
	}
	return err
}
