// Package shared holds the response envelope helpers and request-context
// plumbing used by both the handlers and the middleware.
package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
)

// ContextKey is the type for context values set by this package.
type ContextKey string

// Context keys for various values.
const (
	// AccessTokenContextKey is the context key for the bearer token
	// extracted from the Authorization header. Empty means anonymous.
	AccessTokenContextKey ContextKey = "accessToken"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16
)

// SetTraceID adds a freshly generated trace ID to the context.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, TraceIDKey, generateTraceID())
}

// GetTraceID retrieves the trace ID from the context, or "" when absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetAccessToken stores the request's bearer token in the context.
func SetAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, AccessTokenContextKey, token)
}

// GetAccessToken retrieves the bearer token from the context, or "" when
// the request carried none.
func GetAccessToken(ctx context.Context) string {
	token, ok := ctx.Value(AccessTokenContextKey).(string)
	if !ok {
		return ""
	}
	return token
}

// generateTraceID creates a random 32-character hex trace ID.
func generateTraceID() string {
	b := make([]byte, traceIDLength)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively unheard of; log and carry on
		// without a trace ID rather than aborting the request.
		slog.Error("failed to generate trace ID", "error", err)
		return ""
	}
	return hex.EncodeToString(b)
}
