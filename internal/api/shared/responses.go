package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform JSON wrapper every endpoint returns. Invariant:
// a failure envelope always carries success=false and a non-empty error
// string; a success envelope never carries an error key.
type Envelope map[string]any

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope, merging the given fields
// over {"success": true}.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, fields Envelope) {
	envelope := Envelope{"success": true}
	for k, v := range fields {
		envelope[k] = v
	}
	RespondWithJSON(w, r, http.StatusOK, envelope)
}

// RespondWithError writes a failure envelope with the given status code
// and message, logging it with the trace ID for correlation. Server
// errors log at ERROR level, client errors at DEBUG.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.LogAttrs(r.Context(), level, "sending error response",
		slog.Int("status_code", status),
		slog.String("message", message),
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	envelope := Envelope{"success": false, "error": message}
	if traceID != "" {
		envelope["trace_id"] = traceID
	}
	RespondWithJSON(w, r, status, envelope)
}
