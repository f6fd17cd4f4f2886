package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
	"github.com/phrazzld/portico-api/internal/service"
)

// ProcessHandler handles LLM completion API requests.
type ProcessHandler struct {
	orchestrator *service.Orchestrator
	logger       *slog.Logger
}

// NewProcessHandler creates a new ProcessHandler with the given dependencies.
func NewProcessHandler(orchestrator *service.Orchestrator, logger *slog.Logger) *ProcessHandler {
	return &ProcessHandler{orchestrator: orchestrator, logger: logger}
}

// Process handles POST /process. The orchestrator reports provider
// failures inside its result rather than through an error, so a failed
// completion becomes a 500 envelope carrying the provider's message.
func (h *ProcessHandler) Process(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.orchestrator.Process(r.Context(), req.Query, service.ServiceName(req.Service), service.Options{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
	})
	if !result.Success {
		RespondWithError(w, r, http.StatusInternalServerError, result.Error)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"result": result.Result})
}
