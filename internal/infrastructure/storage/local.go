package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DavidGarzon9580/lite-thinking/internal/application/delivery"
)

var _ delivery.DocumentStorage = (*LocalStorage)(nil)

// LocalStorage archives inventory documents on the local filesystem.
// Meant for development; the layout mirrors the S3 key scheme.
type LocalStorage struct {
	baseDir string
	now     func() int64 // unix millis
}

// NewLocalStorage creates a filesystem storage backend. An empty
// baseDir falls back to a directory under the system temp dir.
func NewLocalStorage(baseDir string, nowMillis func() int64) *LocalStorage {
	if baseDir == "" {
		baseDir = filepath.Join(os.TempDir(), "inventories")
	}
	return &LocalStorage{baseDir: baseDir, now: nowMillis}
}

// Store writes the document under <baseDir>/<nit>/ and returns its path
func (s *LocalStorage) Store(ctx context.Context, companyNIT string, document []byte) (string, error) {
	dir := filepath.Join(s.baseDir, companyNIT)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("inventory-%d.txt", s.now()))
	if err := os.WriteFile(path, document, 0644); err != nil {
		return "", fmt.Errorf("failed to write inventory document: %w", err)
	}
	return path, nil
}
