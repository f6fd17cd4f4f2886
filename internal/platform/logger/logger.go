// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/portico-api/internal/config"
)

// contextKey is the type for logger context keys.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger is stored.
var loggerKey = contextKey{}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// Invalid levels fall back to info; warn about it on a temporary
		// text logger since the real one is not configured yet.
		level = slog.LevelInfo
		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	log := slog.New(handler)

	// Set this logger as the default for the application so the slog
	// package functions (slog.Info, slog.Error, etc.) use it directly.
	slog.SetDefault(log)

	return log, nil
}

// WithContext returns a copy of ctx carrying the given logger.
func WithContext(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContextOrDefault returns the logger stored in ctx, or fallback when
// the context carries none.
func FromContextOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if log, ok := ctx.Value(loggerKey).(*slog.Logger); ok && log != nil {
		return log
	}
	return fallback
}
