package logger

import (
	"context"
	"log/slog"
)

// contextKey is a private type for context keys defined in this package.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger is stored.
var loggerKey = contextKey{}

// WithContext returns a new context carrying the given logger.
// Handlers and middleware use this to thread a request-scoped logger
// (e.g. one annotated with a trace ID) down into the store layer.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, or nil if none is set.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(loggerKey).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none. A nil fallback
// resolves to slog.Default().
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if fallback != nil {
		return fallback
	}
	return slog.Default()
}
