// Package fs implements the filesystem adapter that writes generated files,
// skipping rewrites when the content fingerprint is unchanged.
package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*Writer)(nil)

// Writer implements ports.OutputWriter with fingerprint-based skip.
type Writer struct {
	store ports.StampStore
}

// NewWriter creates a Writer using the given stamp store.
func NewWriter(store ports.StampStore) *Writer {
	return &Writer{store: store}
}

// Fingerprint returns the XXHash fingerprint of generated content.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Write places data at path, creating parent directories as needed. The file
// is left untouched when its recorded fingerprint matches and it still exists
// on disk, so unchanged outputs keep their mtimes.
func (w *Writer) Write(path string, data []byte) (bool, error) {
	fingerprint := Fingerprint(data)

	stamp, err := w.store.Get(path)
	if err != nil {
		return false, err
	}
	if stamp != nil && stamp.Fingerprint == fingerprint {
		if _, statErr := os.Stat(path); statErr == nil {
			return false, nil
		}
		// Stamp without a file means the output was removed externally.
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "path", path)
	}

	if err := writeAtomic(path, data); err != nil {
		return false, zerr.With(errors.Join(domain.ErrOutputWriteFailed, err), "path", path)
	}

	if err := w.store.Put(domain.Stamp{Path: path, Fingerprint: fingerprint}); err != nil {
		return false, err
	}

	return true, nil
}

// writeAtomic writes data to a temp file in the target directory and renames
// it into place, so a concurrent reader never sees a half-written file.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
