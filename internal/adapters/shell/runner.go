// Package shell runs compiled modules with the external benchmark tool.
package shell

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes every case with the configured tool. Cases run with bounded
// parallelism; the first failure cancels the remaining runs.
func (r *Runner) Run(ctx context.Context, cfg domain.BenchmarkConfig, cases []domain.BenchmarkCase) error {
	if cfg.Tool == "" {
		return domain.ErrBenchmarkToolMissing
	}

	parallelism := cfg.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for _, c := range cases {
		g.Go(func() error {
			return r.runCase(ctx, cfg, c)
		})
	}

	return g.Wait()
}

func (r *Runner) runCase(ctx context.Context, cfg domain.BenchmarkConfig, c domain.BenchmarkCase) error {
	args := []string{
		fmt.Sprintf("--module_file=%s", c.ModulePath),
	}
	if c.EntryFunction != "" {
		args = append(args, fmt.Sprintf("--entry_function=%s", c.EntryFunction))
	}
	if cfg.Driver != "" {
		args = append(args, fmt.Sprintf("--driver=%s", cfg.Driver))
	}
	args = append(args, cfg.ExtraArgs...)
	args = append(args, c.Args...)

	r.logger.Info(fmt.Sprintf("running benchmark case %s", c.Name))

	cmd := exec.CommandContext(ctx, cfg.Tool, args...) //nolint:gosec // tool comes from the manifest

	out := &logWriter{logger: r.logger, level: "info"}
	cmd.Stdout = out
	cmd.Stderr = &logWriter{logger: r.logger, level: "error"}

	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = v.Stdout()
		cmd.Stderr = v.Stdout()
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(
			zerr.With(
				errors.Join(domain.ErrBenchmarkFailed, err),
				"case", c.Name),
			"exit_code", exitCode)
	}

	return nil
}

type logWriter struct {
	logger ports.Logger
	level  string
}

// Write forwards each line to the logger. Partial lines are not buffered;
// the benchmark tool writes line-oriented output.
func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
