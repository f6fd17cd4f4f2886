package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/portico-api/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		LLM: config.LLMConfig{
			DefaultModel:     "gpt-4o-mini",
			DefaultMaxTokens: 1000,
		},
	}
}

func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(context.Background(), cfg, logger)
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var envelope map[string]any
	if rr.Body.Len() > 0 && json.Unmarshal(rr.Body.Bytes(), &envelope) == nil {
		return rr, envelope
	}
	return rr, nil
}

func TestNewApplicationBootsWithoutCredentials(t *testing.T) {
	// No Supabase keys, no LLM keys. The server must still come up and
	// surface configuration problems per request, not at startup.
	app := newTestApplication(t, testConfig())

	assert.NotNil(t, app.supabase)
	assert.NotNil(t, app.authGateway)
	assert.NotNil(t, app.dataGateway)
	assert.NotNil(t, app.storageGateway)
	assert.NotNil(t, app.orchestrator)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApplication(t, testConfig())
	router := app.setupRouter()

	rr, _ := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestSupabaseConfigEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Supabase = config.SupabaseConfig{
		URL: "https://example.supabase.co",
		Key: "public-anon-key",
	}
	app := newTestApplication(t, cfg)
	router := app.setupRouter()

	rr, envelope := doJSON(t, router, http.MethodGet, "/supabase/config", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, true, envelope["success"])

	supaCfg, ok := envelope["config"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.supabase.co", supaCfg["url"])
	assert.Equal(t, "public-anon-key", supaCfg["key"])
}

func TestSignUpWithoutSupabaseConfiguration(t *testing.T) {
	app := newTestApplication(t, testConfig())
	router := app.setupRouter()

	body := map[string]any{"email": "ada@example.com", "password": "secret"}
	rr, envelope := doJSON(t, router, http.MethodPost, "/auth/signup", body)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, false, envelope["success"])
	assert.Equal(t, "Supabase URL or key is missing", envelope["error"])
}

func TestProcessWithoutRegisteredGenerators(t *testing.T) {
	app := newTestApplication(t, testConfig())
	router := app.setupRouter()

	rr, envelope := doJSON(t, router, http.MethodPost, "/process", map[string]any{"query": "hello"})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "Unknown service: openai", envelope["error"])
}

func TestMalformedAuthorizationHeaderIsRejected(t *testing.T) {
	app := newTestApplication(t, testConfig())
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/data?table=users", nil)
	req.Header.Set("Authorization", "not-a-bearer-header")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	assert.Equal(t, "Invalid authorization format", envelope["error"])
}

func TestDataFetchValidation(t *testing.T) {
	app := newTestApplication(t, testConfig())
	router := app.setupRouter()

	rr, envelope := doJSON(t, router, http.MethodGet, "/data", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "table is required", envelope["error"])
}

func TestOpenAIGeneratorRegisteredWhenKeyPresent(t *testing.T) {
	cfg := testConfig()
	cfg.LLM.OpenAIAPIKey = "sk-test"
	app := newTestApplication(t, cfg)
	router := app.setupRouter()

	// The generator is registered; an unknown service name still fails.
	rr, envelope := doJSON(t, router, http.MethodPost, "/process", map[string]any{
		"query":   "hello",
		"service": "anthropic",
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "Unknown service: anthropic", envelope["error"])
}
