package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Register the pgx stdlib driver under the name "pgx".
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jwhitley/storefront-api/internal/config"
)

// pingTimeout bounds the connectivity check performed at startup.
const pingTimeout = 5 * time.Second

// DB wraps the process-wide *sql.DB pool and enforces the configured
// acquire timeout. It is created once at startup and shared by every
// store for the life of the process.
type DB struct {
	sqldb          *sql.DB
	acquireTimeout time.Duration
}

// Open establishes the database connection pool and verifies connectivity.
// The pool is bounded by cfg.PoolSize; waiting for a free connection is
// bounded by cfg.AcquireTimeout (see Acquire). Callers are responsible for
// calling Close on shutdown.
func Open(cfg config.DatabaseConfig, log *slog.Logger) (*DB, error) {
	if log == nil {
		log = slog.Default()
	}

	sqldb, err := sql.Open("pgx", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqldb.SetMaxOpenConns(cfg.PoolSize)
	sqldb.SetMaxIdleConns(cfg.PoolSize)
	sqldb.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqldb.PingContext(ctx); err != nil {
		// Release the handle; a failed ping at startup is fatal anyway.
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection pool established",
		slog.String("host", cfg.Host),
		slog.Int("port", cfg.Port),
		slog.String("database", cfg.Name),
		slog.Int("pool_size", cfg.PoolSize),
		slog.Duration("acquire_timeout", cfg.AcquireTimeout))

	return &DB{
		sqldb:          sqldb,
		acquireTimeout: cfg.AcquireTimeout,
	}, nil
}

// Acquire checks a single connection out of the pool. When the pool is
// saturated it waits at most the configured acquire timeout before failing;
// the timeout bounds only acquisition, not the statements the caller then
// runs on the connection. The caller must Close the returned connection to
// return it to the pool.
func (d *DB) Acquire(ctx context.Context) (*sql.Conn, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, d.acquireTimeout)
	defer cancel()

	conn, err := d.sqldb.Conn(acquireCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return conn, nil
}

// Raw exposes the underlying *sql.DB for collaborators that manage their
// own connection use, such as the migration runner.
func (d *DB) Raw() *sql.DB {
	return d.sqldb
}

// Close shuts down the pool, waiting for in-flight statements to finish.
func (d *DB) Close() error {
	return d.sqldb.Close()
}
