// Package stamp persists content fingerprints of generated files so unchanged
// outputs can be skipped on the next run.
package stamp

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
)

// DefaultPath is the stamp store location relative to the working directory.
const DefaultPath = ".kiln/stamps.json"

// Store implements ports.StampStore using a flat JSON file.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.Stamp
}

// NewStore creates a StampStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.Stamp),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Join(domain.ErrStampReadFailed, err)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return errors.Join(domain.ErrStampReadFailed, err)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStampWriteFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Join(domain.ErrStampWriteFailed, err)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Join(domain.ErrStampWriteFailed, err)
	}

	return nil
}

// Get retrieves the stamp for a generated file path.
func (s *Store) Get(path string) (*domain.Stamp, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stamp, ok := s.cache[path]
	if !ok {
		return nil, nil
	}
	return &stamp, nil
}

// Put stores the stamp.
func (s *Store) Put(stamp domain.Stamp) error {
	s.mu.Lock()
	s.cache[stamp.Path] = stamp
	s.mu.Unlock()

	return s.save()
}
