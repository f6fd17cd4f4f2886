package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/portico-api/internal/api"
	apiMiddleware "github.com/phrazzld/portico-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)
	r.Use(apiMiddleware.BearerToken)

	// Create API handlers using the application's gateways
	authHandler := api.NewAuthHandler(app.authGateway, app.logger)
	dataHandler := api.NewDataHandler(app.dataGateway, app.logger)
	storageHandler := api.NewStorageHandler(app.storageGateway, app.logger)
	processHandler := api.NewProcessHandler(app.orchestrator, app.logger)
	configHandler := api.NewConfigHandler(app.supabase, app.logger)

	// Authentication endpoints
	r.Post("/auth/signup", authHandler.SignUp)
	r.Post("/auth/signin", authHandler.SignIn)
	r.Post("/auth/signout", authHandler.SignOut)
	r.Post("/auth/reset-password", authHandler.ResetPassword)
	r.Get("/auth/user", authHandler.GetUser)
	r.Put("/auth/user", authHandler.UpdatePassword)
	r.Get("/auth/session", authHandler.GetSession)

	// Data endpoints
	r.Post("/data", dataHandler.Insert)
	r.Get("/data", dataHandler.Fetch)
	r.Put("/data", dataHandler.Update)
	r.Delete("/data", dataHandler.Delete)
	r.Post("/data/query", dataHandler.Query)
	r.Post("/data/rpc", dataHandler.ExecuteRPC)

	// Storage endpoints
	r.Post("/storage", storageHandler.Upload)
	r.Get("/storage", storageHandler.DownloadOrList)
	r.Delete("/storage", storageHandler.Delete)
	r.Get("/storage/public-url", storageHandler.PublicURL)
	r.Get("/storage/signed-url", storageHandler.SignedURL)

	// LLM completion endpoint
	r.Post("/process", processHandler.Process)

	// Frontend bootstrap configuration
	r.Get("/supabase/config", configHandler.SupabaseConfig)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
