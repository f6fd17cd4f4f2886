package supabase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/gateway"
)

func TestAnonRequiresConfiguration(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SupabaseConfig
	}{
		{name: "Missing Both"},
		{name: "Missing Key", cfg: config.SupabaseConfig{URL: "https://example.supabase.co"}},
		{name: "Missing URL", cfg: config.SupabaseConfig{Key: "anon-key"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := NewProvider(tc.cfg)

			_, err := provider.Anon()
			require.Error(t, err)
			assert.True(t, errors.Is(err, gateway.ErrMissingConfig))
			assert.Equal(t, "Supabase URL or key is missing", err.Error())
		})
	}
}

func TestAnonMemoizesClient(t *testing.T) {
	provider := NewProvider(config.SupabaseConfig{
		URL: "https://example.supabase.co",
		Key: "anon-key",
	})

	first, err := provider.Anon()
	require.NoError(t, err)
	second, err := provider.Anon()
	require.NoError(t, err)

	assert.Same(t, first, second, "repeated access should return the memoized client")
}

func TestResetClearsMemoizedClient(t *testing.T) {
	provider := NewProvider(config.SupabaseConfig{
		URL: "https://example.supabase.co",
		Key: "anon-key",
	})

	first, err := provider.Anon()
	require.NoError(t, err)

	provider.Reset()

	second, err := provider.Anon()
	require.NoError(t, err)
	assert.NotSame(t, first, second, "reset should force reconstruction")
}

func TestTokenScopedAccessors(t *testing.T) {
	provider := NewProvider(config.SupabaseConfig{
		URL: "https://example.supabase.co",
		Key: "anon-key",
	})

	// Unconfigured providers fail the same way on every accessor.
	empty := NewProvider(config.SupabaseConfig{})
	_, err := empty.Rest("")
	assert.True(t, errors.Is(err, gateway.ErrMissingConfig))
	_, err = empty.ObjectStore("")
	assert.True(t, errors.Is(err, gateway.ErrMissingConfig))
	_, err = empty.Auth("")
	assert.True(t, errors.Is(err, gateway.ErrMissingConfig))

	// Configured providers hand out clients for both scopes.
	rest, err := provider.Rest("")
	require.NoError(t, err)
	assert.NotNil(t, rest)

	scoped, err := provider.Rest("user-token")
	require.NoError(t, err)
	assert.NotNil(t, scoped)

	store, err := provider.ObjectStore("user-token")
	require.NoError(t, err)
	assert.NotNil(t, store)

	auth, err := provider.Auth("user-token")
	require.NoError(t, err)
	assert.NotNil(t, auth)
}

func TestProviderExposesFrontendConfig(t *testing.T) {
	provider := NewProvider(config.SupabaseConfig{
		URL: "https://example.supabase.co",
		Key: "anon-key",
	})

	assert.Equal(t, "https://example.supabase.co", provider.URL())
	assert.Equal(t, "anon-key", provider.AnonKey())
}
