package blobstore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"fieldops/internal/shared/id"
	"fieldops/internal/shared/logger"
)

// FilesystemStore writes blobs under a local directory that the HTTP server
// serves statically.
type FilesystemStore struct {
	dir           string
	publicBaseURL string
	logger        logger.Interface
}

func NewFilesystemStore(dir, publicBaseURL string, log logger.Interface) (*FilesystemStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FilesystemStore{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        log,
	}, nil
}

var _ Store = (*FilesystemStore)(nil)

func (s *FilesystemStore) Store(ctx context.Context, data []byte, contentType, pathHint string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("blob is empty")
	}
	if len(data) > MaxFileSize {
		return "", fmt.Errorf("blob exceeds maximum size of %d bytes", int64(MaxFileSize))
	}
	ext, ok := ExtensionFor(contentType)
	if !ok {
		return "", fmt.Errorf("content type %s is not storable", contentType)
	}
	name := id.MustGenerate(16) + ext

	subdir := sanitizeHint(pathHint)
	targetDir := s.dir
	if subdir != "" {
		targetDir = filepath.Join(s.dir, subdir)
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory: %w", err)
		}
	}

	target := filepath.Join(targetDir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	url := s.publicBaseURL + "/" + path.Join(subdir, name)
	s.logger.Debug("blob stored", "path", target, "url", url)
	return url, nil
}

// sanitizeHint keeps the hint a single flat path segment.
func sanitizeHint(hint string) string {
	hint = strings.ToLower(strings.TrimSpace(hint))
	var b strings.Builder
	for _, r := range hint {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
