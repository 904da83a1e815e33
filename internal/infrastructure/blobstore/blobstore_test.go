package blobstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldops/internal/shared/logger"
)

func TestValidateFile(t *testing.T) {
	tests := []struct {
		name        string
		size        int64
		contentType string
		wantErr     bool
	}{
		{"valid jpeg", 1024, "image/jpeg", false},
		{"valid png", 1024, "image/png", false},
		{"valid webp", 1024, "image/webp", false},
		{"valid gif", 1024, "image/gif", false},
		{"empty file", 0, "image/jpeg", true},
		{"oversized", MaxFileSize + 1, "image/jpeg", true},
		{"at the limit", MaxFileSize, "image/jpeg", false},
		{"pdf rejected", 1024, "application/pdf", true},
		{"html rejected for uploads", 1024, "text/html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFile(tt.size, tt.contentType)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	assert.Error(t, ValidateBatch(0))
	assert.NoError(t, ValidateBatch(1))
	assert.NoError(t, ValidateBatch(MaxBatchFiles))
	assert.Error(t, ValidateBatch(MaxBatchFiles+1))
}

func TestFilesystemStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFilesystemStore(dir, "/uploads/", logger.NewLogger())
	require.NoError(t, err)

	t.Run("stores under hint directory", func(t *testing.T) {
		url, err := store.Store(context.Background(), []byte("fake-jpeg"), "image/jpeg", "before")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/before/"), url)
		assert.True(t, strings.HasSuffix(url, ".jpg"), url)

		name := filepath.Base(url)
		data, err := os.ReadFile(filepath.Join(dir, "before", name))
		require.NoError(t, err)
		assert.Equal(t, []byte("fake-jpeg"), data)
	})

	t.Run("stores html reports", func(t *testing.T) {
		url, err := store.Store(context.Background(), []byte("<html></html>"), "text/html", "reports")

		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(url, ".html"), url)
	})

	t.Run("hint cannot escape the root", func(t *testing.T) {
		url, err := store.Store(context.Background(), []byte("x"), "image/png", "../evil")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(url, "/uploads/evil/"), url)
	})

	t.Run("unknown content type is rejected", func(t *testing.T) {
		_, err := store.Store(context.Background(), []byte("x"), "application/zip", "misc")

		assert.Error(t, err)
	})
}
