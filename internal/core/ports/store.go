package ports

import "go.trai.ch/kiln/internal/core/domain"

// StampStore defines the interface for persisting generated-file fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StampStore interface {
	// Get retrieves the stamp for a generated file path.
	// Returns nil, nil if not found.
	Get(path string) (*domain.Stamp, error)

	// Put stores the stamp.
	Put(stamp domain.Stamp) error
}
