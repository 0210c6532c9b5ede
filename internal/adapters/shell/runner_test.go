package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) *shell.Runner {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return shell.NewRunner(log)
}

func TestRun_NoToolConfigured(t *testing.T) {
	err := newRunner(t).Run(context.Background(), domain.BenchmarkConfig{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBenchmarkToolMissing))
}

func TestRun_NoCases(t *testing.T) {
	cfg := domain.BenchmarkConfig{Tool: "true", Parallelism: 2}
	require.NoError(t, newRunner(t).Run(context.Background(), cfg, nil))
}

func TestRun_SuccessfulCases(t *testing.T) {
	cfg := domain.BenchmarkConfig{Tool: "true", Parallelism: 2}
	cases := []domain.BenchmarkCase{
		{Name: "m1-c1", ModulePath: "artifacts/m1/c1/module.vmfb"},
		{Name: "m2-c1", ModulePath: "artifacts/m2/c1/module.vmfb", EntryFunction: "forward"},
	}

	require.NoError(t, newRunner(t).Run(context.Background(), cfg, cases))
}

func TestRun_FailingCaseReportsName(t *testing.T) {
	cfg := domain.BenchmarkConfig{Tool: "false", Parallelism: 1}
	cases := []domain.BenchmarkCase{
		{Name: "broken-case", ModulePath: "artifacts/m1/c1/module.vmfb"},
	}

	err := newRunner(t).Run(context.Background(), cfg, cases)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBenchmarkFailed))
}

func TestRun_MissingToolFails(t *testing.T) {
	cfg := domain.BenchmarkConfig{Tool: "definitely-not-a-real-binary-kiln"}
	cases := []domain.BenchmarkCase{
		{Name: "m1-c1", ModulePath: "artifacts/m1/c1/module.vmfb"},
	}

	err := newRunner(t).Run(context.Background(), cfg, cases)
	require.Error(t, err)
}

func TestRun_DefaultParallelism(t *testing.T) {
	// Parallelism zero falls back to serial execution instead of panicking.
	cfg := domain.BenchmarkConfig{Tool: "true"}
	cases := []domain.BenchmarkCase{{Name: "m1-c1", ModulePath: "m.vmfb"}}

	require.NoError(t, newRunner(t).Run(context.Background(), cfg, cases))
}
