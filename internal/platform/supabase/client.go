// Package supabase implements the gateway interfaces on top of the
// Supabase client libraries: gotrue for authentication, PostgREST for
// row-level data and the storage API for objects.
package supabase

import (
	"strings"
	"sync"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/postgrest-go"
	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/phrazzld/portico-api/internal/config"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// Supabase API mount points under the project URL.
const (
	restPath    = "/rest/v1"
	storagePath = "/storage/v1"
)

// Provider owns construction of Supabase client handles. One Provider is
// wired per process and injected into each gateway, replacing hidden
// process-global state with explicit dependencies.
//
// The anonymous client is memoized; token-scoped handles are constructed
// per call since they are stateless configuration and cheap to build.
type Provider struct {
	cfg config.SupabaseConfig

	mu   sync.Mutex
	anon *supa.Client
}

// NewProvider creates a Provider over the given configuration. Missing
// URL or key is not an error here; it surfaces on first use.
func NewProvider(cfg config.SupabaseConfig) *Provider {
	return &Provider{cfg: cfg}
}

// configured reports whether both URL and key are present.
func (p *Provider) configured() bool {
	return p.cfg.URL != "" && p.cfg.Key != ""
}

// Anon returns the memoized anonymous-key client, constructing it on
// first use. Concurrent first calls are serialized by the mutex; a
// duplicate construction lost to the race would be harmless since the
// handle holds nothing but configuration.
func (p *Provider) Anon() (*supa.Client, error) {
	if !p.configured() {
		return nil, gateway.NewError(gateway.ErrMissingConfig, "Supabase URL or key is missing")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.anon != nil {
		return p.anon, nil
	}

	client, err := supa.NewClient(p.cfg.URL, p.cfg.Key, &supa.ClientOptions{})
	if err != nil {
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	p.anon = client
	return p.anon, nil
}

// Reset clears the memoized client so the next access reconstructs it.
// Used when configuration changes at runtime.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.anon = nil
}

// URL returns the configured project URL.
func (p *Provider) URL() string { return p.cfg.URL }

// AnonKey returns the configured anonymous API key.
func (p *Provider) AnonKey() string { return p.cfg.Key }

// Auth returns a gotrue client, scoped to the given access token when one
// is supplied and anonymous otherwise.
func (p *Provider) Auth(token string) (gotrue.Client, error) {
	client, err := p.Anon()
	if err != nil {
		return nil, err
	}
	if token == "" {
		return client.Auth, nil
	}
	return client.Auth.WithToken(token), nil
}

// Rest returns a PostgREST client. When a token is supplied the bearer
// header carries it so row-level security applies; otherwise the
// anonymous key is used as the bearer.
func (p *Provider) Rest(token string) (*postgrest.Client, error) {
	if !p.configured() {
		return nil, gateway.NewError(gateway.ErrMissingConfig, "Supabase URL or key is missing")
	}
	bearer := p.cfg.Key
	if token != "" {
		bearer = token
	}
	headers := map[string]string{
		"apikey":        p.cfg.Key,
		"Authorization": "Bearer " + bearer,
	}
	return postgrest.NewClient(strings.TrimRight(p.cfg.URL, "/")+restPath, "public", headers), nil
}

// ObjectStore returns a storage client with the same token-or-anon-key
// scoping as Rest.
func (p *Provider) ObjectStore(token string) (*storage_go.Client, error) {
	if !p.configured() {
		return nil, gateway.NewError(gateway.ErrMissingConfig, "Supabase URL or key is missing")
	}
	bearer := p.cfg.Key
	if token != "" {
		bearer = token
	}
	headers := map[string]string{"apikey": p.cfg.Key}
	return storage_go.NewClient(strings.TrimRight(p.cfg.URL, "/")+storagePath, bearer, headers), nil
}
