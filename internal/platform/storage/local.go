// Package storage provides the local-disk implementation of the profile
// picture file store.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes uploaded files into a directory on local disk and hands
// back paths under a public URL prefix. The directory is served verbatim by
// a static file route, so every stored file is publicly readable by path.
type LocalStore struct {
	dir       string
	urlPrefix string
}

// NewLocalStore creates a LocalStore rooted at dir, creating the directory
// if necessary. Stored files are addressed as urlPrefix + "/" + filename.
func NewLocalStore(dir, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, urlPrefix: urlPrefix}, nil
}

// Save writes the file under a freshly generated UUID name, keeping the
// original extension, and returns the public path. The write completes
// before Save returns; there is no background processing.
func (s *LocalStore) Save(ctx context.Context, data []byte, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}

// Dir returns the directory files are written to, for wiring the static
// file route.
func (s *LocalStore) Dir() string {
	return s.dir
}
