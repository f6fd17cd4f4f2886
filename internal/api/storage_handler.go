package api

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/phrazzld/portico-api/internal/api/shared"
	"github.com/phrazzld/portico-api/internal/domain"
	"github.com/phrazzld/portico-api/internal/gateway"
)

// maxUploadBytes caps the in-memory portion of multipart parsing.
const maxUploadBytes = 32 << 20

// StorageHandler handles file storage API requests.
type StorageHandler struct {
	storage gateway.Storage
	logger  *slog.Logger
}

// NewStorageHandler creates a new StorageHandler with the given dependencies.
func NewStorageHandler(storage gateway.Storage, logger *slog.Logger) *StorageHandler {
	return &StorageHandler{storage: storage, logger: logger}
}

// Upload handles POST /storage. It expects a multipart form with a
// "file" part plus a "bucket" field; "path" and "content_type" are
// optional. A missing path gets a generated object name keyed off the
// uploaded filename's extension.
func (h *StorageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	bucket := r.FormValue("bucket")
	if bucket == "" {
		RespondWithError(w, r, http.StatusBadRequest, "bucket is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	contentType := r.FormValue("content_type")
	if contentType == "" {
		contentType = header.Header.Get("Content-Type")
	}

	result, err := h.storage.Upload(
		r.Context(),
		bucket,
		r.FormValue("path"),
		file,
		header.Filename,
		contentType,
		shared.GetAccessToken(r.Context()),
	)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{
		"path": result.Path,
		"url":  result.URL,
	})
}

// DownloadOrList handles GET /storage. With a path it downloads the
// object and returns it base64-encoded; without one it lists the bucket.
func (h *StorageHandler) DownloadOrList(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	if bucket == "" {
		RespondWithError(w, r, http.StatusBadRequest, "bucket is required")
		return
	}

	token := shared.GetAccessToken(r.Context())

	if path := r.URL.Query().Get("path"); path != "" {
		data, err := h.storage.Download(r.Context(), bucket, path, token)
		if err != nil {
			HandleGatewayError(w, r, err)
			return
		}

		encoded := base64.StdEncoding.EncodeToString(data)
		RespondWithSuccess(w, r, shared.Envelope{
			"path": path,
			"data": encoded,
		})
		return
	}

	opts := domain.ListOptions{
		Prefix:    r.URL.Query().Get("prefix"),
		Limit:     queryInt(r, "limit", 0),
		Offset:    queryInt(r, "offset", 0),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	files, err := h.storage.List(r.Context(), bucket, token, opts)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"files": files})
}

// Delete handles DELETE /storage.
func (h *StorageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	path := r.URL.Query().Get("path")
	if bucket == "" || path == "" {
		RespondWithError(w, r, http.StatusBadRequest, "bucket and path are required")
		return
	}

	if err := h.storage.Delete(r.Context(), bucket, path, shared.GetAccessToken(r.Context())); err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"path": path})
}

// PublicURL handles GET /storage/public-url.
func (h *StorageHandler) PublicURL(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	path := r.URL.Query().Get("path")
	if bucket == "" || path == "" {
		RespondWithError(w, r, http.StatusBadRequest, "bucket and path are required")
		return
	}

	url, err := h.storage.PublicURL(bucket, path)
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"url": url})
}

// SignedURL handles GET /storage/signed-url. The expiry defaults when
// expires_in is absent or non-positive.
func (h *StorageHandler) SignedURL(w http.ResponseWriter, r *http.Request) {
	bucket := r.URL.Query().Get("bucket")
	path := r.URL.Query().Get("path")
	if bucket == "" || path == "" {
		RespondWithError(w, r, http.StatusBadRequest, "bucket and path are required")
		return
	}

	expiresIn := queryInt(r, "expires_in", 0)

	url, err := h.storage.SignedURL(r.Context(), bucket, path, expiresIn, shared.GetAccessToken(r.Context()))
	if err != nil {
		HandleGatewayError(w, r, err)
		return
	}

	RespondWithSuccess(w, r, shared.Envelope{"url": url})
}
