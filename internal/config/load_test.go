package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.DefaultModel)
	assert.Equal(t, 1000, cfg.LLM.DefaultMaxTokens)

	// Supabase credentials are optional at load time.
	assert.Empty(t, cfg.Supabase.URL)
	assert.Empty(t, cfg.Supabase.Key)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORTICO_SERVER_PORT", "9090")
	t.Setenv("PORTICO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PORTICO_SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("PORTICO_SUPABASE_KEY", "test-anon-key")
	t.Setenv("PORTICO_LLM_OPENAI_API_KEY", "sk-test")
	t.Setenv("PORTICO_LLM_DEFAULT_MODEL", "gpt-4o")
	t.Setenv("PORTICO_LLM_DEFAULT_MAX_TOKENS", "256")
	t.Setenv("PORTICO_FRONTEND_URL", "https://app.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "test-anon-key", cfg.Supabase.Key)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.DefaultModel)
	assert.Equal(t, 256, cfg.LLM.DefaultMaxTokens)
	assert.Equal(t, "https://app.example.com", cfg.Frontend.URL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Invalid Log Level", key: "PORTICO_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "Port Out Of Range", key: "PORTICO_SERVER_PORT", value: "70000"},
		{name: "Malformed Supabase URL", key: "PORTICO_SUPABASE_URL", value: "not-a-url"},
		{name: "Zero Max Tokens", key: "PORTICO_LLM_DEFAULT_MAX_TOKENS", value: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "validation")
		})
	}
}
