package domain

import "go.trai.ch/zerr"

var (
	// ErrMultipleCompileTargets is returned when a compile config does not carry exactly one compile target.
	ErrMultipleCompileTargets = zerr.New("exactly one compile target is required")

	// ErrUnsupportedArchitecture is returned when a compile target names an architecture outside the supported set.
	ErrUnsupportedArchitecture = zerr.New("unsupported target architecture")

	// ErrUnsupportedSourceType is returned when a model declares a source type outside the supported set.
	ErrUnsupportedSourceType = zerr.New("unsupported model source type")

	// ErrUnsupportedTargetABI is returned when a backend does not support the requested target ABI.
	ErrUnsupportedTargetABI = zerr.New("unsupported target ABI for backend")

	// ErrImportPathMismatch is returned when a model that needs no import step is asked to
	// produce its output at a path different from its source path.
	ErrImportPathMismatch = zerr.New("separate import path is not supported for models already in the target dialect")

	// ErrModelRuleNotFound is returned when a referenced model id has no source model rule.
	ErrModelRuleNotFound = zerr.New("model rule not found")

	// ErrDuplicateTarget is returned when two emitted rules claim the same target name.
	ErrDuplicateTarget = zerr.New("duplicate build target")

	// ErrUndefinedTargetDependency is returned when an emitted rule depends on a target no rule defines.
	ErrUndefinedTargetDependency = zerr.New("target depends on undefined target")

	// ErrTargetCycle is returned when the emitted target graph contains a cycle.
	ErrTargetCycle = zerr.New("cycle in emitted target graph")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrDuplicateModel is returned when a manifest declares two models with the same id.
	ErrDuplicateModel = zerr.New("duplicate model id in manifest")

	// ErrDuplicateCompileConfig is returned when a manifest declares two compile configs with the same id.
	ErrDuplicateCompileConfig = zerr.New("duplicate compile config id in manifest")

	// ErrUnknownModel is returned when a generation entry references an undeclared model.
	ErrUnknownModel = zerr.New("generation entry references unknown model")

	// ErrUnknownCompileConfig is returned when a generation entry references an undeclared compile config.
	ErrUnknownCompileConfig = zerr.New("generation entry references unknown compile config")

	// ErrStampReadFailed is returned when the stamp store cannot be read.
	ErrStampReadFailed = zerr.New("failed to read stamp store")

	// ErrStampWriteFailed is returned when the stamp store cannot be written.
	ErrStampWriteFailed = zerr.New("failed to write stamp store")

	// ErrOutputWriteFailed is returned when a generated file cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated file")

	// ErrBenchmarkToolMissing is returned when the manifest configures no benchmark tool.
	ErrBenchmarkToolMissing = zerr.New("no benchmark tool configured")

	// ErrBenchmarkFailed is returned when a benchmark tool invocation fails.
	ErrBenchmarkFailed = zerr.New("benchmark run failed")
)
