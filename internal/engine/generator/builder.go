// Package generator turns module generation configs into the ordered CMake
// rule list that builds imported models and compiled modules.
package generator

import (
	"fmt"

	"go.trai.ch/kiln/internal/cmake"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// RuleBuilder constructs the build rules for one generated package. The
// package name namespaces every emitted target path.
type RuleBuilder struct {
	packageName string
}

// NewRuleBuilder creates a RuleBuilder for the given CMake package.
func NewRuleBuilder(packageName string) *RuleBuilder {
	return &RuleBuilder{packageName: packageName}
}

// TargetPath returns the full target path for a target name within the package.
func (b *RuleBuilder) TargetPath(targetName string) string {
	return fmt.Sprintf("%s_%s", b.packageName, targetName)
}

// BuildModelImportRule returns the rule importing a source model into MLIR.
//
// Models already in the target dialect need no import step: their source rule
// doubles as the import rule, so the source path and the requested output path
// must agree, and no rule text is emitted.
func (b *RuleBuilder) BuildModelImportRule(
	sourceRule domain.ModelRule,
	imported domain.ImportedModel,
	outputFilePath string,
) (domain.ModelImportRule, error) {
	model := imported.Model

	if model.SourceType == domain.SourceExportedLinalgMLIR {
		if sourceRule.FilePath != outputFilePath {
			return domain.ModelImportRule{}, zerr.With(
				zerr.With(
					zerr.With(
						zerr.Wrap(domain.ErrImportPathMismatch, "building model import rule"),
						"model", model.ID),
					"source_path", sourceRule.FilePath),
				"output_path", outputFilePath)
		}
		return domain.ModelImportRule{
			TargetName:     sourceRule.TargetName,
			OutputFilePath: outputFilePath,
		}, nil
	}

	targetName := fmt.Sprintf("iree-imported-model-%s", model.ID)

	var rule string
	switch model.SourceType {
	case domain.SourceExportedTFLite:
		rule = cmake.ImportTfliteModel(b.TargetPath(targetName), sourceRule.FilePath, outputFilePath)
	case domain.SourceExportedTF:
		rule = cmake.ImportTfModel(b.TargetPath(targetName), sourceRule.FilePath, model.EntryFunction, outputFilePath)
	default:
		return domain.ModelImportRule{}, zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrUnsupportedSourceType, "building model import rule"),
				"source_type", string(model.SourceType)),
			"model", model.ID)
	}

	return domain.ModelImportRule{
		TargetName:     targetName,
		OutputFilePath: outputFilePath,
		CMakeRules:     []string{rule},
	}, nil
}

// BuildModuleCompileRule returns the rule compiling an imported model into a
// bytecode module under one compile config.
func (b *RuleBuilder) BuildModuleCompileRule(
	importRule domain.ModelImportRule,
	imported domain.ImportedModel,
	config domain.CompileConfig,
	outputFilePath string,
) (domain.ModuleCompileRule, error) {
	flags, err := ResolveFlags(config, imported.DialectType)
	if err != nil {
		return domain.ModuleCompileRule{}, err
	}

	targetName := fmt.Sprintf("iree-module-%s-%s", imported.Model.ID, config.ID)

	rule := cmake.BytecodeModule(targetName, importRule.OutputFilePath, outputFilePath, flags)

	return domain.ModuleCompileRule{
		TargetName:       targetName,
		OutputModulePath: outputFilePath,
		CMakeRules:       []string{rule},
	}, nil
}
