package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner defines the interface for executing compiled modules with the
// external benchmark tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes every case with the configured tool. Cases run with bounded
	// parallelism; the first failure cancels the remaining runs.
	Run(ctx context.Context, cfg domain.BenchmarkConfig, cases []domain.BenchmarkCase) error
}
