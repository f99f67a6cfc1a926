// Package main implements the entry point for the storefront API server,
// an HTTP CRUD service over users and products backed by PostgreSQL.
package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/jwhitley/storefront-api/internal/config"
	"github.com/jwhitley/storefront-api/internal/platform/logger"
	"github.com/jwhitley/storefront-api/internal/platform/postgres"
)

// main wires configuration, logging, the database pool, migrations, and the
// HTTP server. Any failure before the listener is bound aborts the process;
// there is no degraded-mode startup.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("starting server",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	db, err := postgres.Open(cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database pool", slog.String("error", err.Error()))
		}
	}()

	// Migrations run to completion before the first request is accepted.
	if err := runMigrations(db.Raw(), appLogger); err != nil {
		return err
	}

	router := setupRouter(cfg, db, appLogger)

	if err := serve(cfg.Server.Port, router, appLogger); err != nil {
		return err
	}

	appLogger.Info("server stopped")
	return nil
}
