package generator

import (
	"go.trai.ch/kiln/internal/artifacts"
	"go.trai.ch/kiln/internal/cmake"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Aggregate target names are part of the external interface: downstream
// tooling depends on them by name. Renaming one is a breaking change.
const (
	// ImportModelsTarget builds every imported model.
	ImportModelsTarget = "iree-benchmark-import-models"
	// BenchmarkSuitesTarget builds every benchmark-ready module.
	BenchmarkSuitesTarget = "iree-benchmark-suites"
	// CompileStatsSuitesTarget builds every compile-stats module.
	CompileStatsSuitesTarget = "iree-e2e-compile-stats-suites"
)

// TargetNode is one emitted build target and its dependency edges, used to
// verify the generated graph before it is written.
type TargetNode struct {
	Name string
	Deps []string
}

// Result is the outcome of one generation run.
type Result struct {
	// Rules is the ordered CMake rule text: import rules, compile rules, then
	// aggregate rules. The order is stable across runs.
	Rules []string
	// Targets lists every emitted target with its dependencies.
	Targets []TargetNode
}

// GenerateRules emits the full ordered rule list for the requested module
// generation configs. modelRules must cover every referenced model id.
func GenerateRules(
	packageName string,
	rootPath string,
	genConfigs []domain.ModuleGenerationConfig,
	modelRules map[string]domain.ModelRule,
) ([]string, error) {
	result, err := Generate(packageName, rootPath, genConfigs, modelRules)
	if err != nil {
		return nil, err
	}
	return result.Rules, nil
}

// Generate is GenerateRules plus the emitted target graph.
//
// A model shared by several generation configs is imported once; every compile
// rule that needs it references the same import output. Any invariant
// violation aborts the run with no partial output.
func Generate(
	packageName string,
	rootPath string,
	genConfigs []domain.ModuleGenerationConfig,
	modelRules map[string]domain.ModelRule,
) (*Result, error) {
	builder := NewRuleBuilder(packageName)
	result := &Result{}

	// One import rule per distinct model id, in first-reference order. When
	// several generation configs carry the same model id, the last
	// ImportedModel seen supplies the import.
	importedModels := make(map[string]domain.ImportedModel, len(genConfigs))
	importOrder := make([]string, 0, len(genConfigs))
	for _, config := range genConfigs {
		id := config.ImportedModel.Model.ID
		if _, ok := importedModels[id]; !ok {
			importOrder = append(importOrder, id)
		}
		importedModels[id] = config.ImportedModel
	}

	importRules := make(map[string]domain.ModelImportRule, len(importOrder))
	seenTargets := make(map[string]bool)

	for _, modelID := range importOrder {
		imported := importedModels[modelID]

		sourceRule, ok := modelRules[modelID]
		if !ok {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrModelRuleNotFound, "resolving model source rule"),
				"model", modelID)
		}

		importedPath := artifacts.ImportedModelPath(imported, rootPath)
		importRule, err := builder.BuildModelImportRule(sourceRule, imported, importedPath)
		if err != nil {
			return nil, err
		}

		importRules[modelID] = importRule
		result.Rules = append(result.Rules, importRule.CMakeRules...)

		if importRule.TargetName == sourceRule.TargetName {
			// No import step; the source rule doubles as the import rule.
			addTarget(result, seenTargets, builder.TargetPath(sourceRule.TargetName))
		} else {
			addTarget(result, seenTargets, builder.TargetPath(sourceRule.TargetName))
			addTarget(result, seenTargets,
				builder.TargetPath(importRule.TargetName),
				builder.TargetPath(sourceRule.TargetName))
		}
	}

	var moduleTargets []string
	var statsTargets []string

	for _, config := range genConfigs {
		importRule := importRules[config.ImportedModel.Model.ID]
		modulePath := artifacts.ModulePath(config, rootPath)

		compileRule, err := builder.BuildModuleCompileRule(
			importRule, config.ImportedModel, config.CompileConfig, modulePath)
		if err != nil {
			return nil, err
		}

		if config.CompileConfig.HasTag(domain.CompileStatsTag) {
			statsTargets = append(statsTargets, compileRule.TargetName)
		} else {
			moduleTargets = append(moduleTargets, compileRule.TargetName)
		}
		result.Rules = append(result.Rules, compileRule.CMakeRules...)

		// Compile targets are appended unconditionally; a colliding name is a
		// generation defect the graph verifier reports.
		result.Targets = append(result.Targets, TargetNode{
			Name: builder.TargetPath(compileRule.TargetName),
			Deps: []string{builder.TargetPath(importRule.TargetName)},
		})
	}

	if len(importOrder) > 0 {
		deps := make([]string, 0, len(importOrder))
		for _, modelID := range importOrder {
			deps = append(deps, builder.TargetPath(importRules[modelID].TargetName))
		}
		result.Rules = append(result.Rules, cmake.AddDependencies(ImportModelsTarget, deps))
		result.Targets = append(result.Targets, TargetNode{Name: ImportModelsTarget, Deps: deps})
	}
	if len(moduleTargets) > 0 {
		result.Rules = append(result.Rules, cmake.AddDependencies(BenchmarkSuitesTarget, targetPaths(builder, moduleTargets)))
		result.Targets = append(result.Targets, TargetNode{Name: BenchmarkSuitesTarget, Deps: targetPaths(builder, moduleTargets)})
	}
	if len(statsTargets) > 0 {
		result.Rules = append(result.Rules, cmake.AddDependencies(CompileStatsSuitesTarget, targetPaths(builder, statsTargets)))
		result.Targets = append(result.Targets, TargetNode{Name: CompileStatsSuitesTarget, Deps: targetPaths(builder, statsTargets)})
	}

	return result, nil
}

// addTarget appends a target node unless the same name was already added for
// a shared upstream (several models can reuse one source rule target).
func addTarget(result *Result, seen map[string]bool, name string, deps ...string) {
	if seen[name] {
		return
	}
	seen[name] = true
	result.Targets = append(result.Targets, TargetNode{Name: name, Deps: deps})
}

func targetPaths(builder *RuleBuilder, targetNames []string) []string {
	paths := make([]string, 0, len(targetNames))
	for _, name := range targetNames {
		paths = append(paths, builder.TargetPath(name))
	}
	return paths
}
