package domain

// UploadResult is what a successful object upload reports back: the final
// path (possibly generated) and the object's public URL.
type UploadResult struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// FileInfo describes one entry of a bucket listing.
type FileInfo struct {
	Name      string         `json:"name"`
	ID        string         `json:"id,omitempty"`
	UpdatedAt string         `json:"updated_at,omitempty"`
	CreatedAt string         `json:"created_at,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// ListOptions narrows a bucket listing. Zero values mean provider defaults.
type ListOptions struct {
	Prefix    string
	Limit     int
	Offset    int
	SortBy    string
	SortOrder string
}
