package supabase

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// defaultSignedURLExpiry is the signed-URL lifetime in seconds when the
// caller does not supply one.
const defaultSignedURLExpiry = 60

// StorageGateway implements gateway.Storage over the provider's
// bucket-oriented object store.
type StorageGateway struct {
	provider *Provider
	logger   *slog.Logger
}

// NewStorageGateway creates a StorageGateway using the given provider.
func NewStorageGateway(provider *Provider, logger *slog.Logger) *StorageGateway {
	return &StorageGateway{provider: provider, logger: logger}
}

var _ gateway.Storage = (*StorageGateway)(nil)

// Upload stores data under bucket/path. An empty path gets a generated
// unique name, preserving the extension of the original filename when one
// is derivable.
func (g *StorageGateway) Upload(ctx context.Context, bucket, path string, data io.Reader, filename, contentType, token string) (*domain.UploadResult, error) {
	store, err := g.provider.ObjectStore(token)
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = generatePath(filename)
	}

	var opts storage_go.FileOptions
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if _, err := store.UploadFile(bucket, path, data, opts); err != nil {
		g.logger.ErrorContext(ctx, "upload failed", "bucket", bucket, "path", path, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}

	publicURL := store.GetPublicUrl(bucket, path).SignedURL
	g.logger.InfoContext(ctx, "file uploaded", "bucket", bucket, "path", path)
	return &domain.UploadResult{Path: path, URL: publicURL}, nil
}

// Download returns the object's raw bytes.
func (g *StorageGateway) Download(ctx context.Context, bucket, path, token string) ([]byte, error) {
	store, err := g.provider.ObjectStore(token)
	if err != nil {
		return nil, err
	}

	data, err := store.DownloadFile(bucket, path)
	if err != nil {
		g.logger.ErrorContext(ctx, "download failed", "bucket", bucket, "path", path, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return data, nil
}

// Delete removes the object at bucket/path.
func (g *StorageGateway) Delete(ctx context.Context, bucket, path, token string) error {
	store, err := g.provider.ObjectStore(token)
	if err != nil {
		return err
	}

	if _, err := store.RemoveFile(bucket, []string{path}); err != nil {
		g.logger.ErrorContext(ctx, "delete failed", "bucket", bucket, "path", path, "error", err)
		return gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return nil
}

// List enumerates objects in a bucket, optionally under a prefix.
func (g *StorageGateway) List(ctx context.Context, bucket, token string, opts domain.ListOptions) ([]domain.FileInfo, error) {
	store, err := g.provider.ObjectStore(token)
	if err != nil {
		return nil, err
	}

	search := storage_go.FileSearchOptions{
		Limit:  opts.Limit,
		Offset: opts.Offset,
	}
	if opts.SortBy != "" {
		order := opts.SortOrder
		if order == "" {
			order = "asc"
		}
		search.SortByOptions = storage_go.SortBy{Column: opts.SortBy, Order: order}
	}

	objects, err := store.ListFiles(bucket, opts.Prefix, search)
	if err != nil {
		g.logger.ErrorContext(ctx, "list failed", "bucket", bucket, "prefix", opts.Prefix, "error", err)
		return nil, gateway.WrapProvider(gateway.ErrProvider, err)
	}

	files := make([]domain.FileInfo, 0, len(objects))
	for _, obj := range objects {
		// Object metadata is untyped in the SDK; anything that is not a
		// JSON object is dropped rather than guessed at.
		meta, _ := obj.Metadata.(map[string]any)
		files = append(files, domain.FileInfo{
			Name:      obj.Name,
			ID:        obj.Id,
			UpdatedAt: obj.UpdatedAt,
			CreatedAt: obj.CreatedAt,
			Metadata:  meta,
		})
	}
	return files, nil
}

// PublicURL returns the object's public URL. Pure URL construction, no
// network call.
func (g *StorageGateway) PublicURL(bucket, path string) (string, error) {
	store, err := g.provider.ObjectStore("")
	if err != nil {
		return "", err
	}
	return store.GetPublicUrl(bucket, path).SignedURL, nil
}

// SignedURL creates a time-limited access URL; expiresIn of zero or less
// falls back to the 60 second default.
func (g *StorageGateway) SignedURL(ctx context.Context, bucket, path string, expiresIn int, token string) (string, error) {
	store, err := g.provider.ObjectStore(token)
	if err != nil {
		return "", err
	}

	if expiresIn <= 0 {
		expiresIn = defaultSignedURLExpiry
	}

	resp, err := store.CreateSignedUrl(bucket, path, expiresIn)
	if err != nil {
		g.logger.ErrorContext(ctx, "signed url failed", "bucket", bucket, "path", path, "error", err)
		return "", gateway.WrapProvider(gateway.ErrProvider, err)
	}
	return resp.SignedURL, nil
}

// generatePath builds a unique object path, keeping the extension of the
// original filename when it has one.
func generatePath(filename string) string {
	return uuid.New().String() + filepath.Ext(filename)
}
