package main

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// slogGooseLogger adapts goose's logger interface to slog so migration
// output lands in the structured log stream.
type slogGooseLogger struct {
	log *slog.Logger
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Error(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.log.Info(fmt.Sprintf(format, v...))
}

// runMigrations applies all pending schema migrations in ascending version
// order against the given database handle. Already-applied migrations are
// skipped; goose tracks history in its goose_db_version table. Any failure
// is returned to the caller, which treats it as fatal: the server never
// starts with a partially migrated schema.
func runMigrations(db *sql.DB, log *slog.Logger) error {
	// A correlation ID ties all log lines of one migration run together.
	migrationLogger := log.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("component", "migrations"),
	)

	startTime := time.Now()
	migrationLogger.Info("applying database migrations")

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(&slogGooseLogger{log: migrationLogger})

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	migrationLogger.Info("database migrations completed",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}
