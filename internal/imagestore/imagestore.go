package imagestore

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"exambook/internal/domain"
	"exambook/internal/storage"
)

// Store persists binary image content in the text-only storage medium as
// base64 data URLs. It implements domain.ImageStore.
type Store struct {
	storage domain.Storage
}

// NewStore creates a new image store on top of the given storage port.
func NewStore(s domain.Storage) domain.ImageStore {
	return &Store{storage: s}
}

// SaveImage reads the full content, encodes it as a data URL and stores it
// under the derived path. A second image with the same exam, exercise,
// type and filename silently replaces the first.
func (s *Store) SaveImage(ctx context.Context, examID, exerciseID string, imageType domain.ImageType, filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read image content: %w", err)
	}

	path := storage.ImagePath(examID, exerciseID, imageType, filename)
	if err := s.storage.Set(ctx, storage.ImageKey(path), EncodeDataURL(filename, data)); err != nil {
		return "", fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return path, nil
}

// GetImage returns the encoded content stored under path, or
// domain.ErrNoValue if no image exists there.
func (s *Store) GetImage(ctx context.Context, path string) (string, error) {
	return s.storage.Get(ctx, storage.ImageKey(path))
}

// EncodeDataURL encodes raw bytes as a base64 data URL. The media type is
// guessed from the filename extension.
func EncodeDataURL(filename string, data []byte) string {
	mediaType := mime.TypeByExtension(filepath.Ext(filename))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL decodes a data URL produced by EncodeDataURL back into raw
// bytes.
func DecodeDataURL(s string) ([]byte, error) {
	if !strings.HasPrefix(s, "data:") {
		return nil, fmt.Errorf("not a data URL")
	}
	idx := strings.Index(s, ";base64,")
	if idx < 0 {
		return nil, fmt.Errorf("data URL is not base64 encoded")
	}
	data, err := base64.StdEncoding.DecodeString(s[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URL: %w", err)
	}
	return data, nil
}
