package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitley/storefront-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug_level", "debug"},
		{"info_level", "info"},
		{"warn_level", "warn"},
		{"error_level", "error"},
		{"case_insensitive", "DEBUG"},
		{"invalid_level_falls_back_to_info", "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{Port: 3000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, log, slog.Default(), "Setup should install the default logger")
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithContext(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))

	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))

	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}
