package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/kbellil/interior-design-api/internal/logger"
)

// ImageStore persists uploaded and generated design images under a root
// directory. Filenames carry a uuid so two saves by the same user can
// never collide. All returned paths use forward slashes.
type ImageStore struct {
	root           string
	removeOnDelete bool

	// writeFile is swappable in tests to simulate I/O failures.
	writeFile func(name string, data []byte, perm os.FileMode) error
}

// NewImageStore creates an ImageStore rooted at dir. When removeOnDelete
// is true, RemoveOnDelete actually deletes files; otherwise it is a no-op
// and deleting a design keeps its images on disk.
func NewImageStore(dir string, removeOnDelete bool) *ImageStore {
	return &ImageStore{root: dir, removeOnDelete: removeOnDelete, writeFile: os.WriteFile}
}

// SavePair writes the original and generated images of one design. If the
// second write fails, the first file is removed before the error is
// returned, so either both files exist afterwards or neither does.
func (s *ImageStore) SavePair(userID int64, original, generated []byte) (string, string, error) {
	dir := filepath.Join(s.root, "designs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}

	id := uuid.NewString()
	originalPath := filepath.Join(dir, fmt.Sprintf("original_%d_%s.jpg", userID, id))
	generatedPath := filepath.Join(dir, fmt.Sprintf("generated_%d_%s.jpg", userID, id))

	if err := s.writeFile(originalPath, original, 0o644); err != nil {
		return "", "", err
	}
	if err := s.writeFile(generatedPath, generated, 0o644); err != nil {
		s.Remove(filepath.ToSlash(originalPath))
		return "", "", err
	}

	return filepath.ToSlash(originalPath), filepath.ToSlash(generatedPath), nil
}

// Remove deletes the given files, best effort. Used to roll back a save
// whose database write failed.
func (s *ImageStore) Remove(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(filepath.FromSlash(p)); err != nil && !os.IsNotExist(err) {
			logger.Log.Errorw("failed to remove image file", "path", p, "error", err)
		}
	}
}

// RemoveOnDelete deletes the given files only when the store was
// configured to clean up after record deletion.
func (s *ImageStore) RemoveOnDelete(paths ...string) {
	if !s.removeOnDelete {
		return
	}
	s.Remove(paths...)
}

// Open opens a stored image for reading. The caller closes the file.
func (s *ImageStore) Open(path string) (*os.File, error) {
	return os.Open(filepath.FromSlash(path))
}
