// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/kiln/internal/core/domain"

// ConfigLoader defines the interface for loading the generation manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the fully-resolved
	// generation inputs. Manifest order is preserved.
	Load(path string) (*domain.Manifest, error)
}
