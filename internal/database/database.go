package database

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// NewPool creates a new PostgreSQL connection pool
func NewPool(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	if maxConns > math.MaxInt32 {
		maxConns = math.MaxInt32
	}
	config.MaxConns = int32(maxConns)
	config.MinConns = DefaultMinConnections
	config.MaxConnLifetime = maxLife
	config.MaxConnIdleTime = maxIdle

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	return pool, nil
}

// ConnectWithRetry opens the shared connection pool, retrying startup
// failures with capped exponential backoff. Every consumer goes through this
// single policy; there is no per-component reconnect logic.
func ConnectWithRetry(ctx context.Context, connString string, maxConns int, maxIdle, maxLife time.Duration) (*pgxpool.Pool, error) {
	delay := InitialRetryDelay
	var lastErr error

	for attempt := 1; attempt <= MaxConnectAttempts; attempt++ {
		pool, err := NewPool(ctx, connString, maxConns, maxIdle, maxLife)
		if err == nil {
			slog.Info(LogMsgSuccessfullyConnectedToDatabase, "attempt", attempt)
			return pool, nil
		}
		lastErr = err

		slog.Warn(LogMsgConnectAttemptFailed, "attempt", attempt, "max_attempts", MaxConnectAttempts, "error", err)

		if attempt == MaxConnectAttempts {
			break
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectCancelled, ctx.Err())
		}

		delay = time.Duration(float64(delay) * RetryBackoffMultiplier)
		if delay > MaxRetryDelay {
			delay = MaxRetryDelay
		}
	}

	return nil, fmt.Errorf("%s after %d attempts: %w", ErrMsgConnectRetriesExhausted, MaxConnectAttempts, lastErr)
}
