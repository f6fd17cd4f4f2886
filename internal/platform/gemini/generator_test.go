package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/generation"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newFakeGenerator builds a Generator whose client talks to a local test
// server instead of the real Gemini endpoint.
func newFakeGenerator(t *testing.T, serverURL string) *Generator {
	t.Helper()

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: serverURL},
	})
	require.NoError(t, err)

	return &Generator{
		logger: testLogger(),
		cfg: config.LLMConfig{
			GeminiAPIKey:     "test-key",
			DefaultModel:     "gpt-4o-mini",
			DefaultMaxTokens: 256,
		},
		client: client,
	}
}

func TestNewGeneratorRequiresAPIKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{
		DefaultModel:     "gpt-4o-mini",
		DefaultMaxTokens: 100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrInvalidConfig))
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	g, err := NewGenerator(context.Background(), testLogger(), config.LLMConfig{
		GeminiAPIKey:     "test-key",
		DefaultModel:     "gpt-4o-mini",
		DefaultMaxTokens: 100,
	})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "", "", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrEmptyPrompt))
}

func TestGenerateSendsPromptAndTokenBudget(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"hello "},{"text":"world"}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	g := newFakeGenerator(t, server.URL)

	text, err := g.Generate(context.Background(), "Say hello", "gemini-test", 512)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	assert.True(t, strings.Contains(gotPath, "models/gemini-test:generateContent"),
		"unexpected request path %q", gotPath)

	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "request body missing generationConfig: %v", gotBody)
	assert.Equal(t, float64(512), genCfg["maxOutputTokens"])

	contents, ok := gotBody["contents"].([]any)
	require.True(t, ok)
	require.Len(t, contents, 1)
	parts := contents[0].(map[string]any)["parts"].([]any)
	require.Len(t, parts, 1)
	assert.Equal(t, "Say hello", parts[0].(map[string]any)["text"])
}

func TestGenerateFallsBackToDefaultTokenBudget(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]},"finishReason":"STOP"}]}`))
	}))
	defer server.Close()

	g := newFakeGenerator(t, server.URL)

	_, err := g.Generate(context.Background(), "Say ok", "", 0)
	require.NoError(t, err)

	genCfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "request body missing generationConfig: %v", gotBody)
	assert.Equal(t, float64(256), genCfg["maxOutputTokens"])
}

func TestGenerateSafetyBlockReturnsInvalidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[]},"finishReason":"SAFETY"}]}`))
	}))
	defer server.Close()

	g := newFakeGenerator(t, server.URL)

	_, err := g.Generate(context.Background(), "Say something", "", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrInvalidResponse))
}
