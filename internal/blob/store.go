// Package blob stores note attachments as opaque named files under a
// single upload directory.
package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store persists attachment blobs on disk. Stored names carry a random
// prefix so two uploads of the same filename never collide.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a new unique name derived from the original
// filename and returns the stored name.
func (s *Store) Save(filename string, data []byte) (string, error) {
	name := uuid.NewString() + "_" + filepath.Base(filename)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save blob %q: %w", name, err)
	}
	return name, nil
}

// Open reads a stored blob back. A missing blob is reported via os.IsNotExist
// so callers can degrade to a placeholder instead of failing.
func (s *Store) Open(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return nil, fmt.Errorf("open blob %q: %w", name, err)
	}
	return data, nil
}

// Remove deletes a stored blob. It reports whether the blob existed; an
// already-missing blob is not an error, but the caller can log it.
func (s *Store) Remove(name string) (existed bool, err error) {
	err = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove blob %q: %w", name, err)
	}
	return true, nil
}
