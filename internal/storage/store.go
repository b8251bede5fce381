// Package storage writes generated codes to disk as PNG files.
package storage

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/codegen/internal/model"
	"github.com/ytget/codegen/internal/platform"
)

var (
	// ErrNoImage is returned when the code carries no rendered image
	ErrNoImage = errors.New("code has no image to save")

	// ErrPermission is returned when the output directory is not writable
	ErrPermission = errors.New("Permission denied: Cannot write to directory")
)

// Store saves images into a single output directory. Existing files with the
// same name are overwritten.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory
func (s *Store) Dir() string {
	return s.dir
}

// SetDir changes the output directory for subsequent saves
func (s *Store) SetDir(dir string) {
	s.dir = dir
}

// PathFor returns where code would be written
func (s *Store) PathFor(code *model.GeneratedCode) string {
	return filepath.Join(s.dir, code.Filename)
}

// Save writes the code's image as PNG and returns the file path
func (s *Store) Save(code *model.GeneratedCode) (string, error) {
	if code == nil || code.Image == nil {
		return "", ErrNoImage
	}

	if err := platform.CreateDirectoryIfNotExists(s.dir); err != nil {
		return "", wrapFSError(err)
	}

	// Encode into a sibling temp file so a failed write never clobbers an
	// existing image; the rename replaces it in one step.
	path := s.PathFor(code)
	tmp, err := os.CreateTemp(s.dir, "."+code.Filename+".*.tmp")
	if err != nil {
		return "", wrapFSError(err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, code.Image); err != nil {
		tmp.Close()
		return "", fmt.Errorf("Error saving file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", wrapFSError(err)
	}
	if err := os.Chmod(tmpPath, platform.DefaultFilePermissions); err != nil {
		return "", wrapFSError(err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", wrapFSError(err)
	}

	log.Printf("Saved code %s to %s", code.ID, path)
	return path, nil
}

func wrapFSError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w (%v)", ErrPermission, err)
	}
	return fmt.Errorf("Error saving file: %w", err)
}
