package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Uploader is the external media host: local file in, public URL out, and
// deletion of a previously returned URL.
type Uploader interface {
	Upload(ctx context.Context, localPath, keyPrefix string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type UploadService struct {
	Media Uploader
}

func NewUploadService(media Uploader) *UploadService {
	return &UploadService{Media: media}
}

// UploadLocalFile pushes a spooled multipart file to the media host and
// returns its public URL. The temp file is removed whether or not the upload
// succeeds.
func (s *UploadService) UploadLocalFile(ctx context.Context, localPath, keyPrefix string) (string, error) {
	defer os.Remove(localPath)

	url, err := s.Media.Upload(ctx, localPath, keyPrefix)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", filepath.Base(localPath), err)
	}
	return url, nil
}

// RemoveFile deletes a previously uploaded object by its public URL. An empty
// URL is a no-op so callers can pass a field that was never set.
func (s *UploadService) RemoveFile(ctx context.Context, fileURL string) error {
	if fileURL == "" {
		return nil
	}
	return s.Media.Delete(ctx, fileURL)
}
