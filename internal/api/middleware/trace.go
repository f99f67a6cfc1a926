// Package middleware provides HTTP middleware shared by all routes.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jwhitley/storefront-api/internal/api/shared"
	"github.com/jwhitley/storefront-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and a trace-annotated
// logger for downstream handlers and stores. Apply it early in the chain
// so every subsequent handler sees the trace ID.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithContext(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
