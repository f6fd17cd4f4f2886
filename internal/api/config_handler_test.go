package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfigProvider struct {
	url string
	key string
}

func (s *stubConfigProvider) URL() string     { return s.url }
func (s *stubConfigProvider) AnonKey() string { return s.key }

func TestSupabaseConfig(t *testing.T) {
	provider := &stubConfigProvider{
		url: "https://example.supabase.co",
		key: "public-anon-key",
	}
	handler := NewConfigHandler(provider, testLogger())

	rr := httptest.NewRecorder()
	handler.SupabaseConfig(rr, newJSONRequest(t, http.MethodGet, "/supabase/config", nil, ""))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	assert.Equal(t, true, envelope["success"])

	cfg, ok := envelope["config"].(map[string]any)
	require.True(t, ok, "config should be an object")
	assert.Equal(t, "https://example.supabase.co", cfg["url"])
	assert.Equal(t, "public-anon-key", cfg["key"])
}

func TestSupabaseConfigUnconfigured(t *testing.T) {
	handler := NewConfigHandler(&stubConfigProvider{}, testLogger())

	rr := httptest.NewRecorder()
	handler.SupabaseConfig(rr, newJSONRequest(t, http.MethodGet, "/supabase/config", nil, ""))

	// The endpoint reports whatever is configured, empty included; the
	// frontend decides what to do with it.
	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	cfg := envelope["config"].(map[string]any)
	assert.Empty(t, cfg["url"])
	assert.Empty(t, cfg["key"])
}
