package blobstore

import (
	"context"
	"fmt"
)

// Upload limits enforced before any bytes reach a backend.
const (
	MaxBatchFiles = 10
	MaxFileSize   = 5 << 20 // 5 MiB
)

// imageContentTypes is the allowlist for photo uploads.
var imageContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// storableContentTypes additionally covers blobs the system itself produces.
var storableContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"text/html":  ".html",
}

// Store persists a blob and returns its public URL.
type Store interface {
	Store(ctx context.Context, data []byte, contentType, pathHint string) (string, error)
}

// ExtensionFor returns the file extension for a storable content type.
func ExtensionFor(contentType string) (string, bool) {
	ext, ok := storableContentTypes[contentType]
	return ext, ok
}

// ValidateFile checks a single photo upload against the size and type limits.
func ValidateFile(size int64, contentType string) error {
	if size == 0 {
		return fmt.Errorf("file is empty")
	}
	if size > MaxFileSize {
		return fmt.Errorf("file exceeds maximum size of %d bytes", int64(MaxFileSize))
	}
	if _, ok := imageContentTypes[contentType]; !ok {
		return fmt.Errorf("content type %s is not allowed", contentType)
	}
	return nil
}

// ValidateBatch checks the number of files in one upload batch.
func ValidateBatch(count int) error {
	if count == 0 {
		return fmt.Errorf("no files in batch")
	}
	if count > MaxBatchFiles {
		return fmt.Errorf("batch exceeds maximum of %d files", MaxBatchFiles)
	}
	return nil
}
