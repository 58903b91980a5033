// Package photostore persists uploaded photos on local disk under the
// configured upload directory.
package photostore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/config"
)

// Store writes photos to <dir>/photos with random names, keeping the original
// extension. The returned paths are relative to the upload directory so they
// can be served and stored in the database without leaking the host layout.
type Store struct {
	dir     string
	maxSize int64
}

// New creates a Store and ensures the photos directory exists.
func New(cfg config.UploadConfig) (*Store, error) {
	dir := filepath.Join(cfg.Dir, "photos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photos directory: %w", err)
	}

	return &Store{dir: cfg.Dir, maxSize: cfg.MaxFileSize}, nil
}

// Save stores the photo content and returns its relative path.
// The original filename is only consulted for its extension.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	relPath := filepath.Join("photos", uuid.New().String()+ext)

	f, err := os.Create(filepath.Join(s.dir, relPath))
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if n > s.maxSize {
		os.Remove(f.Name())
		return "", fmt.Errorf("photo exceeds maximum size of %d bytes", s.maxSize)
	}

	return relPath, nil
}

// Delete removes a stored photo. A missing file is not an error, so deletes
// stay idempotent.
func (s *Store) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, relPath))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete photo file: %w", err)
	}
	return nil
}

// Open returns a reader for a stored photo.
func (s *Store) Open(relPath string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, relPath))
	if err != nil {
		return nil, fmt.Errorf("open photo file: %w", err)
	}
	return f, nil
}
