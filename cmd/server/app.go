package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/gateway"
	"github.com/phrazzld/portico-api/internal/platform/gemini"
	"github.com/phrazzld/portico-api/internal/platform/openai"
	"github.com/phrazzld/portico-api/internal/platform/supabase"
	"github.com/phrazzld/portico-api/internal/service"
)

// application holds all the shared application dependencies to simplify
// management and ensure consistent wiring.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Supabase client provider, shared across all gateways
	supabase *supabase.Provider

	// Gateway interfaces
	authGateway    gateway.Auth
	dataGateway    gateway.Data
	storageGateway gateway.Storage

	// LLM orchestration
	orchestrator *service.Orchestrator
}

// newApplication creates a new application instance with all dependencies
// initialized. Supabase credentials are not required here; gateways report
// missing configuration on first use so the server can boot and serve the
// endpoints that do not need them.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	app.supabase = supabase.NewProvider(cfg.Supabase)
	app.authGateway = supabase.NewAuthGateway(app.supabase, logger.With("component", "auth_gateway"))
	app.dataGateway = supabase.NewDataGateway(app.supabase, logger.With("component", "data_gateway"))
	app.storageGateway = supabase.NewStorageGateway(app.supabase, logger.With("component", "storage_gateway"))

	app.orchestrator = service.NewOrchestrator(logger.With("component", "orchestrator"))

	// Register only the generators whose provider keys are configured.
	// A request naming an unregistered service gets an error envelope,
	// not a crash.
	if cfg.LLM.OpenAIAPIKey != "" {
		gen, err := openai.NewGenerator(logger.With("component", "openai_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI generator: %w", err)
		}
		app.orchestrator.Register(service.ServiceOpenAI, gen)
		logger.Info("OpenAI generator registered")
	}
	if cfg.LLM.GeminiAPIKey != "" {
		gen, err := gemini.NewGenerator(ctx, logger.With("component", "gemini_generator"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini generator: %w", err)
		}
		app.orchestrator.Register(service.ServiceGemini, gen)
		logger.Info("Gemini generator registered")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles shutdown of application resources. The gateways hold no
// connections of their own, so resetting the memoized Supabase client is
// all there is to do.
func (app *application) cleanup() {
	if app.supabase != nil {
		app.supabase.Reset()
	}

	app.logger.Info("Application shutdown completed")
}
