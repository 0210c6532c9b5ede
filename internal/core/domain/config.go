package domain

import "slices"

// CompileStatsTag marks a compile config whose modules exist to collect
// compilation statistics rather than to run benchmarks.
const CompileStatsTag = "compile-stats"

// CompileConfig is one named set of compilation options from the manifest.
type CompileConfig struct {
	// ID uniquely identifies the config across the suite.
	ID string
	// Tags classify the config. See CompileStatsTag.
	Tags []string
	// CompileTargets lists the devices to compile for. Rule generation
	// currently requires exactly one.
	CompileTargets []CompileTarget
	// ExtraFlags are appended verbatim after all derived flags.
	ExtraFlags []string
}

// HasTag reports whether the config carries the given tag.
func (c CompileConfig) HasTag(tag string) bool {
	return slices.Contains(c.Tags, tag)
}

// ModuleGenerationConfig is one (model, compile config) pair to generate a
// module for.
type ModuleGenerationConfig struct {
	ImportedModel ImportedModel
	CompileConfig CompileConfig
}
