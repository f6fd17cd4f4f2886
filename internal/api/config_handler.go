package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
)

// ConfigProvider exposes the public connection details a frontend needs
// to talk to Supabase directly. Only the anon key ever crosses this
// boundary.
type ConfigProvider interface {
	URL() string
	AnonKey() string
}

// ConfigHandler serves the frontend bootstrap configuration.
type ConfigHandler struct {
	provider ConfigProvider
	logger   *slog.Logger
}

// NewConfigHandler creates a new ConfigHandler with the given dependencies.
func NewConfigHandler(provider ConfigProvider, logger *slog.Logger) *ConfigHandler {
	return &ConfigHandler{provider: provider, logger: logger}
}

// SupabaseConfig handles GET /supabase/config.
func (h *ConfigHandler) SupabaseConfig(w http.ResponseWriter, r *http.Request) {
	RespondWithSuccess(w, r, shared.Envelope{
		"config": map[string]string{
			"url": h.provider.URL(),
			"key": h.provider.AnonKey(),
		},
	})
}
