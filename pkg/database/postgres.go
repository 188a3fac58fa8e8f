package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgRetryAttempts = 3
	pgRetryBaseWait = time.Second
)

// NewPostgresPool creates a pgx connection pool from a DSN with startup retry
// (3 attempts, 1s/2s/4s backoff).
func NewPostgresPool(ctx context.Context, dsn string, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	var pool *pgxpool.Pool
	var lastErr error

	for attempt := 0; attempt < pgRetryAttempts; attempt++ {
		if attempt > 0 {
			wait := pgRetryBaseWait << (attempt - 1)
			logger.Warn("postgres connect retry",
				slog.Int("attempt", attempt+1),
				slog.Duration("wait", wait),
			)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		pool, lastErr = pgxpool.NewWithConfig(ctx, poolCfg)
		if lastErr != nil {
			continue
		}

		if lastErr = pool.Ping(ctx); lastErr != nil {
			pool.Close()
			continue
		}

		return pool, nil
	}

	return nil, fmt.Errorf("connect postgres after %d attempts: %w", pgRetryAttempts, lastErr)
}
