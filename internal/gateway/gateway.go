// Package gateway defines the interfaces between the HTTP endpoint layer
// and the provider-backed implementations, along with the error taxonomy
// shared by all of them.
//
// Every operation is a single blocking round-trip to an external service;
// there are no retries and no local state beyond a memoized client handle.
// The access token, when present, scopes row-level-security-gated
// operations; an empty token means the anonymous key.
package gateway

import (
	"context"
	"io"

	"github.com/phrazzld/portico-api/internal/domain"
)

// Auth wraps the provider's authentication API.
type Auth interface {
	// SignUp registers a new user. The returned session may be nil when
	// the provider requires email confirmation before issuing tokens.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*domain.User, *domain.Session, error)

	// SignIn exchanges credentials for a session. Credential failures are
	// classified as ErrAuthentication.
	SignIn(ctx context.Context, email, password string) (*domain.User, *domain.Session, error)

	// SignOut revokes the session behind the given access token.
	SignOut(ctx context.Context, token string) error

	// ResetPassword sends a password-reset email.
	ResetPassword(ctx context.Context, email string) error

	// UpdatePassword sets a new password for the user behind the token.
	UpdatePassword(ctx context.Context, token, newPassword string) (*domain.User, error)

	// GetUser resolves the user behind the given access token.
	GetUser(ctx context.Context, token string) (*domain.User, error)

	// VerifyToken is GetUser re-dressed as a token check: any failure is
	// classified as ErrAuthentication. No local signature or expiry check
	// is performed; trust is fully delegated to the provider.
	VerifyToken(ctx context.Context, token string) (*domain.User, error)
}

// Data wraps row-level operations against the provider's Postgres tables.
type Data interface {
	// Insert writes one record or a batch and returns the inserted rows.
	Insert(ctx context.Context, table string, records any, token string) ([]map[string]any, error)

	// Fetch reads rows, applying params in fixed order: column selection,
	// filters, ordering, limit, offset. A nil params fetches everything
	// visible under the token scope.
	Fetch(ctx context.Context, table, token string, params *domain.QueryParams) ([]map[string]any, error)

	// Update modifies rows matched by single-column equality and returns
	// the updated rows. No other match operator is supported.
	Update(ctx context.Context, table string, data map[string]any, matchColumn string, matchValue any, token string) ([]map[string]any, error)

	// Delete removes rows matched by single-column equality and returns
	// the deleted rows.
	Delete(ctx context.Context, table, matchColumn string, matchValue any, token string) ([]map[string]any, error)

	// ExecuteRPC invokes a server-side stored procedure.
	ExecuteRPC(ctx context.Context, function string, params map[string]any, token string) (any, error)
}

// Storage wraps the provider's bucket-oriented object store.
type Storage interface {
	// Upload stores data under bucket/path. An empty path generates a
	// unique one, preserving the extension of filename when derivable.
	Upload(ctx context.Context, bucket, path string, data io.Reader, filename, contentType, token string) (*domain.UploadResult, error)

	// Download returns the object's raw bytes.
	Download(ctx context.Context, bucket, path, token string) ([]byte, error)

	// Delete removes the object.
	Delete(ctx context.Context, bucket, path, token string) error

	// List enumerates objects in a bucket.
	List(ctx context.Context, bucket, token string, opts domain.ListOptions) ([]domain.FileInfo, error)

	// PublicURL returns the object's public URL. This is pure URL
	// construction; no network call is made.
	PublicURL(bucket, path string) (string, error)

	// SignedURL creates a time-limited access URL.
	SignedURL(ctx context.Context, bucket, path string, expiresIn int, token string) (string, error)
}
