package generator_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/engine/generator"
)

func tfliteModel(id, name string) domain.ImportedModel {
	return domain.ImportedModel{
		Model:       domain.Model{ID: id, Name: name, SourceType: domain.SourceExportedTFLite},
		DialectType: domain.DialectTOSA,
	}
}

func tfModel(id, name, entry string) domain.ImportedModel {
	return domain.ImportedModel{
		Model:       domain.Model{ID: id, Name: name, SourceType: domain.SourceExportedTF, EntryFunction: entry},
		DialectType: domain.DialectMHLO,
	}
}

func suiteFixture() ([]domain.ModuleGenerationConfig, map[string]domain.ModelRule) {
	m1 := tfliteModel("m1", "MobileNetV2")
	m2 := tfModel("m2", "BertLarge", "forward")

	cfg := llvmCPUConfig("x86-cl", domain.ArchX86_64, "CascadeLake", domain.ABILinuxGNU)
	statsCfg := llvmCPUConfig("x86-cl-stats", domain.ArchX86_64, "CascadeLake", domain.ABILinuxGNU)
	statsCfg.Tags = []string{domain.CompileStatsTag}
	statsCfg.ExtraFlags = []string{"--iree-vm-emit-polyglot-zip=true"}

	genConfigs := []domain.ModuleGenerationConfig{
		{ImportedModel: m1, CompileConfig: cfg},
		{ImportedModel: m2, CompileConfig: cfg},
		{ImportedModel: m1, CompileConfig: statsCfg},
	}
	modelRules := map[string]domain.ModelRule{
		"m1": {TargetName: "model-m1", FilePath: "models/m1.tflite"},
		"m2": {TargetName: "model-m2", FilePath: "models/m2/saved_model"},
	}
	return genConfigs, modelRules
}

func TestGenerateRules_Golden(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "benchmark_suites", []byte(strings.Join(rules, "\n")))
}

func TestGenerateRules_DeduplicatesSharedImports(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	joined := strings.Join(rules, "")
	// m1 backs two compile configs but is imported exactly once.
	assert.Equal(t, 1, strings.Count(joined, "iree_import_tflite_model("))
	assert.Equal(t, 2, strings.Count(joined, `SRC "artifacts/m1/MobileNetV2.mlir"`))
}

func TestGenerateRules_LastImportedModelWinsPerModelID(t *testing.T) {
	genConfigs := []domain.ModuleGenerationConfig{
		{
			ImportedModel: tfliteModel("m1", "MobileNetV2"),
			CompileConfig: llvmCPUConfig("x86-cl", domain.ArchX86_64, "CascadeLake", domain.ABILinuxGNU),
		},
		{
			ImportedModel: tfliteModel("m1", "MobileNetV2Renamed"),
			CompileConfig: llvmCPUConfig("x86-icl", domain.ArchX86_64, "IceLake", domain.ABILinuxGNU),
		},
	}
	modelRules := map[string]domain.ModelRule{
		"m1": {TargetName: "model-m1", FilePath: "models/m1.tflite"},
	}

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	// One import rule, carrying the last imported model seen for the id.
	joined := strings.Join(rules, "")
	assert.Equal(t, 1, strings.Count(joined, "iree_import_tflite_model("))
	assert.Contains(t, rules[0], `OUTPUT_MLIR_FILE "artifacts/m1/MobileNetV2Renamed.mlir"`)
	assert.NotContains(t, joined, `"artifacts/m1/MobileNetV2.mlir"`)
}

func TestGenerateRules_Ordering(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	// Import rules first, compile rules next in input order, aggregates last.
	require.Len(t, rules, 8)
	assert.Contains(t, rules[0], "iree_import_tflite_model(")
	assert.Contains(t, rules[1], "iree_import_tf_model(")
	assert.Contains(t, rules[2], `NAME "iree-module-m1-x86-cl"`)
	assert.Contains(t, rules[3], `NAME "iree-module-m2-x86-cl"`)
	assert.Contains(t, rules[4], `NAME "iree-module-m1-x86-cl-stats"`)
	assert.Contains(t, rules[5], "add_dependencies(iree-benchmark-import-models")
	assert.Contains(t, rules[6], "add_dependencies(iree-benchmark-suites")
	assert.Contains(t, rules[7], "add_dependencies(iree-e2e-compile-stats-suites")
}

func TestGenerateRules_StatsTargetsRoutedSeparately(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	var suites, stats string
	for _, rule := range rules {
		if strings.HasPrefix(rule, "add_dependencies(iree-benchmark-suites") {
			suites = rule
		}
		if strings.HasPrefix(rule, "add_dependencies(iree-e2e-compile-stats-suites") {
			stats = rule
		}
	}
	require.NotEmpty(t, suites)
	require.NotEmpty(t, stats)
	assert.Contains(t, stats, "pkg_iree-module-m1-x86-cl-stats")
	assert.NotContains(t, suites, "pkg_iree-module-m1-x86-cl-stats")
}

func TestGenerateRules_EmptyInputProducesNoRules(t *testing.T) {
	rules, err := generator.GenerateRules("pkg", "artifacts", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestGenerateRules_MissingModelRuleFails(t *testing.T) {
	genConfigs, modelRules := suiteFixture()
	delete(modelRules, "m2")

	_, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModelRuleNotFound))
}

func TestGenerateRules_Idempotent(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	first, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)
	second, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	assert.Equal(t, strings.Join(first, "\n"), strings.Join(second, "\n"))
}

func TestGenerate_TargetGraph(t *testing.T) {
	genConfigs, modelRules := suiteFixture()

	result, err := generator.Generate("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	byName := make(map[string][]string)
	for _, node := range result.Targets {
		byName[node.Name] = node.Deps
	}

	assert.Equal(t, []string{"pkg_model-m1"}, byName["pkg_iree-imported-model-m1"])
	assert.Equal(t, []string{"pkg_iree-imported-model-m1"}, byName["pkg_iree-module-m1-x86-cl"])
	assert.Equal(t,
		[]string{"pkg_iree-imported-model-m1", "pkg_iree-imported-model-m2"},
		byName[generator.ImportModelsTarget])
	assert.Equal(t, []string{"pkg_iree-module-m1-x86-cl-stats"}, byName[generator.CompileStatsSuitesTarget])
}

func TestGenerate_NoImportModelSharesTargetName(t *testing.T) {
	linalg := domain.ImportedModel{
		Model:       domain.Model{ID: "m3", Name: "MatmulLinalg", SourceType: domain.SourceExportedLinalgMLIR},
		DialectType: domain.DialectLinalg,
	}
	cfg := llvmCPUConfig("x86-cl", domain.ArchX86_64, "CascadeLake", domain.ABILinuxGNU)

	genConfigs := []domain.ModuleGenerationConfig{{ImportedModel: linalg, CompileConfig: cfg}}
	modelRules := map[string]domain.ModelRule{
		// Already in dialect: the source path must equal the imported path.
		"m3": {TargetName: "model-m3", FilePath: "artifacts/m3/MatmulLinalg.mlir"},
	}

	result, err := generator.Generate("pkg", "artifacts", genConfigs, modelRules)
	require.NoError(t, err)

	joined := strings.Join(result.Rules, "")
	assert.NotContains(t, joined, "iree_import_")
	// The aggregate import target still depends on the reused source target.
	assert.Contains(t, joined, "add_dependencies(iree-benchmark-import-models\n  pkg_model-m3\n)")

	byName := make(map[string][]string)
	for _, node := range result.Targets {
		byName[node.Name] = node.Deps
	}
	assert.Equal(t, []string{"pkg_model-m3"}, byName["pkg_iree-module-m3-x86-cl"])
}

func TestGenerate_NoImportPathMismatchFails(t *testing.T) {
	linalg := domain.ImportedModel{
		Model:       domain.Model{ID: "m3", Name: "MatmulLinalg", SourceType: domain.SourceExportedLinalgMLIR},
		DialectType: domain.DialectLinalg,
	}
	cfg := llvmCPUConfig("x86-cl", domain.ArchX86_64, "CascadeLake", domain.ABILinuxGNU)

	genConfigs := []domain.ModuleGenerationConfig{{ImportedModel: linalg, CompileConfig: cfg}}
	modelRules := map[string]domain.ModelRule{
		"m3": {TargetName: "model-m3", FilePath: "models/m3.mlir"},
	}

	rules, err := generator.GenerateRules("pkg", "artifacts", genConfigs, modelRules)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrImportPathMismatch))
	assert.Nil(t, rules)
}
