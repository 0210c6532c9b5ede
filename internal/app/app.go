// Package app implements the application layer for kiln.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/kiln/internal/artifacts"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/generator"
	"go.trai.ch/kiln/internal/engine/verify"
	"go.trai.ch/zerr"
)

// header is written at the top of every generated rule file.
const header = "# Generated by kiln. Do not edit manually.\n"

// GenerateOptions configures one generation run.
type GenerateOptions struct {
	// ManifestPath is the manifest file to load.
	ManifestPath string
	// DryRun prints the generated rules instead of writing the output file.
	DryRun bool
}

// BenchmarkOptions configures one benchmark run.
type BenchmarkOptions struct {
	// ManifestPath is the manifest file to load.
	ManifestPath string
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	writer       ports.OutputWriter
	runner       ports.Runner
	logger       ports.Logger
	telemetry    ports.Telemetry

	// Stdout receives dry-run output. Defaults to os.Stdout.
	Stdout io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	writer ports.OutputWriter,
	runner ports.Runner,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		writer:       writer,
		runner:       runner,
		logger:       logger,
		telemetry:    telemetry,
		Stdout:       os.Stdout,
	}
}

// Generate loads the manifest, emits the benchmark suite rules, verifies the
// emitted target graph and writes the output file. Each phase is recorded as
// its own telemetry vertex.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	_, vertex := a.telemetry.Record(ctx, "load manifest")
	manifest, err := a.configLoader.Load(opts.ManifestPath)
	vertex.Complete(err)
	if err != nil {
		return err
	}

	_, vertex = a.telemetry.Record(ctx, "generate rules")
	result, err := generator.Generate(
		manifest.PackageName, manifest.RootPath, manifest.GenerationConfigs, manifest.ModelRules)
	if err != nil {
		err = zerr.Wrap(err, "rule generation failed")
	}
	vertex.Complete(err)
	if err != nil {
		return err
	}

	_, vertex = a.telemetry.Record(ctx, "verify target graph")
	err = verify.Check(result.Targets)
	if err != nil {
		err = zerr.Wrap(err, "emitted target graph is invalid")
	}
	vertex.Complete(err)
	if err != nil {
		return err
	}

	content := header + "\n" + strings.Join(result.Rules, "\n")

	if opts.DryRun {
		_, err := io.WriteString(a.Stdout, content)
		return err
	}

	_, vertex = a.telemetry.Record(ctx, "write output")
	changed, err := a.writer.Write(manifest.OutputPath, []byte(content))
	if err != nil {
		vertex.Complete(err)
		return err
	}
	if changed {
		a.logger.Info(fmt.Sprintf("wrote %s (%d rules)", manifest.OutputPath, len(result.Rules)))
	} else {
		vertex.Cached()
		a.logger.Info(fmt.Sprintf("%s is up to date", manifest.OutputPath))
	}
	vertex.Complete(nil)

	return nil
}

// Benchmark loads the manifest and runs every benchmark-eligible module with
// the configured tool. Modules generated for compile statistics are skipped.
func (a *App) Benchmark(ctx context.Context, opts BenchmarkOptions) error {
	ctx, vertex := a.telemetry.Record(ctx, "run benchmark suites")
	err := a.benchmark(ctx, opts)
	vertex.Complete(err)
	return err
}

func (a *App) benchmark(ctx context.Context, opts BenchmarkOptions) error {
	manifest, err := a.configLoader.Load(opts.ManifestPath)
	if err != nil {
		return err
	}

	cases := make([]domain.BenchmarkCase, 0, len(manifest.GenerationConfigs))
	for _, config := range manifest.GenerationConfigs {
		if config.CompileConfig.HasTag(domain.CompileStatsTag) {
			continue
		}
		cases = append(cases, domain.BenchmarkCase{
			Name:          fmt.Sprintf("%s-%s", config.ImportedModel.Model.ID, config.CompileConfig.ID),
			ModulePath:    artifacts.ModulePath(config, manifest.RootPath),
			EntryFunction: config.ImportedModel.Model.EntryFunction,
		})
	}

	if len(cases) == 0 {
		a.logger.Warn("no benchmark-eligible modules in manifest")
		return nil
	}

	return a.runner.Run(ctx, manifest.Benchmark, cases)
}
