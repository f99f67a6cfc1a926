package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jwhitley/storefront-api/internal/api"
	apiMiddleware "github.com/jwhitley/storefront-api/internal/api/middleware"
	"github.com/jwhitley/storefront-api/internal/config"
	"github.com/jwhitley/storefront-api/internal/platform/postgres"
)

// setupRouter creates and configures the application router with all routes
// and middleware. The pool handle is passed in explicitly and threaded into
// every handler at wiring time; no handler reaches for global state.
func setupRouter(cfg *config.Config, db *postgres.DB, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	// Handlers own their store; stores share the one pool.
	userHandler := api.NewUserHandler(postgres.NewPostgresUserStore(db, log), log)
	productHandler := api.NewProductHandler(postgres.NewPostgresProductStore(db, log), log)
	healthHandler := api.NewHealthHandler(cfg.App.Name, cfg.App.Version)

	// Health check endpoint. Independent of the database so it keeps
	// answering when the store is unreachable.
	r.Get("/health", healthHandler.Check)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List)
			r.Post("/", userHandler.Create)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.Update)
			r.Delete("/{id}", userHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.List)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.Get)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})
	})

	return r
}
