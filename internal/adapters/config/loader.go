// Package config provides the manifest loader for kiln.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML manifest file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the manifest at path and resolves it into generation inputs.
// Manifest order is preserved in the resolved generation configs.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestReadFailed, err), "path", path)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrManifestParseFailed, err), "path", path)
	}
	if err := defaults.Set(&manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to apply manifest defaults")
	}
	if manifest.Package == "" {
		return nil, zerr.With(zerr.New("manifest declares no package name"), "path", path)
	}

	models, modelRules, err := resolveModels(manifest)
	if err != nil {
		return nil, err
	}

	configs, err := resolveCompileConfigs(manifest)
	if err != nil {
		return nil, err
	}

	genConfigs := make([]domain.ModuleGenerationConfig, 0, len(manifest.Generation))
	for _, gen := range manifest.Generation {
		model, ok := models[gen.Model]
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrUnknownModel, "resolving generation matrix"),
				"model", gen.Model)
		}
		config, ok := configs[gen.Config]
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrUnknownCompileConfig, "resolving generation matrix"),
				"compile_config", gen.Config)
		}
		genConfigs = append(genConfigs, domain.ModuleGenerationConfig{
			ImportedModel: model,
			CompileConfig: config,
		})
	}

	l.Logger.Info(fmt.Sprintf("loaded manifest: %d models, %d compile configs, %d generation entries",
		len(manifest.Models), len(manifest.CompileConfigs), len(manifest.Generation)))

	return &domain.Manifest{
		PackageName:       manifest.Package,
		RootPath:          manifest.Root,
		OutputPath:        manifest.Output,
		GenerationConfigs: genConfigs,
		ModelRules:        modelRules,
		Benchmark: domain.BenchmarkConfig{
			Tool:        manifest.Benchmark.Tool,
			Driver:      manifest.Benchmark.Driver,
			Parallelism: manifest.Benchmark.Parallelism,
			ExtraArgs:   manifest.Benchmark.ExtraArgs,
		},
	}, nil
}

// resolveModels validates the declared models and derives their source rules.
// Each model gets one upstream rule named model-<id> providing its file.
func resolveModels(manifest Manifest) (map[string]domain.ImportedModel, map[string]domain.ModelRule, error) {
	models := make(map[string]domain.ImportedModel, len(manifest.Models))
	modelRules := make(map[string]domain.ModelRule, len(manifest.Models))

	for _, dto := range manifest.Models {
		if _, ok := models[dto.ID]; ok {
			return nil, nil, zerr.With(
				zerr.Wrap(domain.ErrDuplicateModel, "resolving manifest models"),
				"model", dto.ID)
		}

		imported, err := domain.NewImportedModel(domain.Model{
			ID:            dto.ID,
			Name:          dto.Name,
			SourceType:    domain.ModelSourceType(dto.Source),
			SourceURL:     dto.URL,
			EntryFunction: dto.Entry,
		})
		if err != nil {
			return nil, nil, err
		}

		models[dto.ID] = imported
		modelRules[dto.ID] = domain.ModelRule{
			TargetName: fmt.Sprintf("model-%s", dto.ID),
			FilePath:   dto.File,
		}
	}

	return models, modelRules, nil
}

func resolveCompileConfigs(manifest Manifest) (map[string]domain.CompileConfig, error) {
	configs := make(map[string]domain.CompileConfig, len(manifest.CompileConfigs))

	for _, dto := range manifest.CompileConfigs {
		if _, ok := configs[dto.ID]; ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrDuplicateCompileConfig, "resolving compile configs"),
				"compile_config", dto.ID)
		}

		targets := make([]domain.CompileTarget, 0, len(dto.Targets))
		for _, target := range dto.Targets {
			backend, err := parseBackend(target.Backend)
			if err != nil {
				return nil, zerr.With(err, "compile_config", dto.ID)
			}
			targets = append(targets, domain.CompileTarget{
				TargetBackend: backend,
				TargetArchitecture: domain.ArchitectureInfo{
					Architecture:      domain.Architecture(target.Architecture),
					Microarchitecture: target.Microarchitecture,
				},
				TargetABI: domain.TargetABI(target.ABI),
			})
		}

		configs[dto.ID] = domain.CompileConfig{
			ID:             dto.ID,
			Tags:           dto.Tags,
			CompileTargets: targets,
			ExtraFlags:     dto.ExtraFlags,
		}
	}

	return configs, nil
}

// parseBackend validates the backend eagerly; architectures are validated
// later by flag resolution, which owns the closed architecture set.
func parseBackend(s string) (domain.TargetBackend, error) {
	switch backend := domain.TargetBackend(s); backend {
	case domain.BackendLLVMCPU, domain.BackendCUDA, domain.BackendVulkanSPIRV, domain.BackendVMVX:
		return backend, nil
	default:
		return "", zerr.With(zerr.New("unsupported target backend"), "backend", s)
	}
}
