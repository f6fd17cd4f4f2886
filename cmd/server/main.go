// Package main implements the entry point for the Portico API server,
// a thin gateway in front of Supabase and LLM completion providers.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application dependencies.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Supabase.URL != "" {
		slog.Debug("Supabase configuration", "url_present", true)
	}

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return app, nil
}
