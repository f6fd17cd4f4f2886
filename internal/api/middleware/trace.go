// Package middleware provides the HTTP middleware applied ahead of the
// API handlers: trace IDs for log correlation and bearer-token extraction.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
)

// Trace adds a trace ID to the request context. Apply it early in the
// chain so every subsequent handler can correlate its logs.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		slog.With(slog.String("trace_id", shared.GetTraceID(ctx))).Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
