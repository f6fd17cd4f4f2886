package mocks

import (
	"context"
	"io"
	"sync"

	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// MockStorageGateway implements gateway.Storage for testing
type MockStorageGateway struct {
	// Custom behavior functions
	UploadFn    func(ctx context.Context, bucket, path string, data io.Reader, filename, contentType, token string) (*domain.UploadResult, error)
	DownloadFn  func(ctx context.Context, bucket, path, token string) ([]byte, error)
	DeleteFn    func(ctx context.Context, bucket, path, token string) error
	ListFn      func(ctx context.Context, bucket, token string, opts domain.ListOptions) ([]domain.FileInfo, error)
	PublicURLFn func(bucket, path string) (string, error)
	SignedURLFn func(ctx context.Context, bucket, path string, expiresIn int, token string) (string, error)

	// Default response values
	UploadResult *domain.UploadResult
	FileData     []byte
	Files        []domain.FileInfo
	URL          string
	Err          error

	// Call tracking for verification
	UploadCalls struct {
		mu           sync.Mutex
		Count        int
		Buckets      []string
		Paths        []string
		Filenames    []string
		ContentTypes []string
		Tokens       []string
		Data         [][]byte
	}

	DownloadCalls struct {
		mu      sync.Mutex
		Count   int
		Buckets []string
		Paths   []string
		Tokens  []string
	}

	DeleteCalls struct {
		mu      sync.Mutex
		Count   int
		Buckets []string
		Paths   []string
		Tokens  []string
	}

	ListCalls struct {
		mu      sync.Mutex
		Count   int
		Buckets []string
		Tokens  []string
		Opts    []domain.ListOptions
	}

	PublicURLCalls struct {
		mu      sync.Mutex
		Count   int
		Buckets []string
		Paths   []string
	}

	SignedURLCalls struct {
		mu        sync.Mutex
		Count     int
		Buckets   []string
		Paths     []string
		ExpiresIn []int
		Tokens    []string
	}
}

var _ gateway.Storage = (*MockStorageGateway)(nil)

// Upload implements the gateway.Storage interface
func (m *MockStorageGateway) Upload(
	ctx context.Context,
	bucket, path string,
	data io.Reader,
	filename, contentType, token string,
) (*domain.UploadResult, error) {
	raw, _ := io.ReadAll(data)

	m.UploadCalls.mu.Lock()
	m.UploadCalls.Count++
	m.UploadCalls.Buckets = append(m.UploadCalls.Buckets, bucket)
	m.UploadCalls.Paths = append(m.UploadCalls.Paths, path)
	m.UploadCalls.Filenames = append(m.UploadCalls.Filenames, filename)
	m.UploadCalls.ContentTypes = append(m.UploadCalls.ContentTypes, contentType)
	m.UploadCalls.Tokens = append(m.UploadCalls.Tokens, token)
	m.UploadCalls.Data = append(m.UploadCalls.Data, raw)
	m.UploadCalls.mu.Unlock()

	if m.UploadFn != nil {
		return m.UploadFn(ctx, bucket, path, data, filename, contentType, token)
	}
	return m.UploadResult, m.Err
}

// Download implements the gateway.Storage interface
func (m *MockStorageGateway) Download(ctx context.Context, bucket, path, token string) ([]byte, error) {
	m.DownloadCalls.mu.Lock()
	m.DownloadCalls.Count++
	m.DownloadCalls.Buckets = append(m.DownloadCalls.Buckets, bucket)
	m.DownloadCalls.Paths = append(m.DownloadCalls.Paths, path)
	m.DownloadCalls.Tokens = append(m.DownloadCalls.Tokens, token)
	m.DownloadCalls.mu.Unlock()

	if m.DownloadFn != nil {
		return m.DownloadFn(ctx, bucket, path, token)
	}
	return m.FileData, m.Err
}

// Delete implements the gateway.Storage interface
func (m *MockStorageGateway) Delete(ctx context.Context, bucket, path, token string) error {
	m.DeleteCalls.mu.Lock()
	m.DeleteCalls.Count++
	m.DeleteCalls.Buckets = append(m.DeleteCalls.Buckets, bucket)
	m.DeleteCalls.Paths = append(m.DeleteCalls.Paths, path)
	m.DeleteCalls.Tokens = append(m.DeleteCalls.Tokens, token)
	m.DeleteCalls.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, bucket, path, token)
	}
	return m.Err
}

// List implements the gateway.Storage interface
func (m *MockStorageGateway) List(ctx context.Context, bucket, token string, opts domain.ListOptions) ([]domain.FileInfo, error) {
	m.ListCalls.mu.Lock()
	m.ListCalls.Count++
	m.ListCalls.Buckets = append(m.ListCalls.Buckets, bucket)
	m.ListCalls.Tokens = append(m.ListCalls.Tokens, token)
	m.ListCalls.Opts = append(m.ListCalls.Opts, opts)
	m.ListCalls.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx, bucket, token, opts)
	}
	return m.Files, m.Err
}

// PublicURL implements the gateway.Storage interface
func (m *MockStorageGateway) PublicURL(bucket, path string) (string, error) {
	m.PublicURLCalls.mu.Lock()
	m.PublicURLCalls.Count++
	m.PublicURLCalls.Buckets = append(m.PublicURLCalls.Buckets, bucket)
	m.PublicURLCalls.Paths = append(m.PublicURLCalls.Paths, path)
	m.PublicURLCalls.mu.Unlock()

	if m.PublicURLFn != nil {
		return m.PublicURLFn(bucket, path)
	}
	return m.URL, m.Err
}

// SignedURL implements the gateway.Storage interface
func (m *MockStorageGateway) SignedURL(ctx context.Context, bucket, path string, expiresIn int, token string) (string, error) {
	m.SignedURLCalls.mu.Lock()
	m.SignedURLCalls.Count++
	m.SignedURLCalls.Buckets = append(m.SignedURLCalls.Buckets, bucket)
	m.SignedURLCalls.Paths = append(m.SignedURLCalls.Paths, path)
	m.SignedURLCalls.ExpiresIn = append(m.SignedURLCalls.ExpiresIn, expiresIn)
	m.SignedURLCalls.Tokens = append(m.SignedURLCalls.Tokens, token)
	m.SignedURLCalls.mu.Unlock()

	if m.SignedURLFn != nil {
		return m.SignedURLFn(ctx, bucket, path, expiresIn, token)
	}
	return m.URL, m.Err
}
