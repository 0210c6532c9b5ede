package domain

// ModelRule is the upstream build rule that provides a source model file.
type ModelRule struct {
	// TargetName is the unqualified name of the rule's build target.
	TargetName string
	// FilePath is the path of the model file the target produces.
	FilePath string
}

// ModelImportRule is the emitted rule importing a source model into MLIR.
// For models already in the target dialect no rule text is emitted and the
// target name is shared with the source model rule.
type ModelImportRule struct {
	TargetName     string
	OutputFilePath string
	CMakeRules     []string
}

// ModuleCompileRule is the emitted rule compiling an imported model into a
// bytecode module.
type ModuleCompileRule struct {
	TargetName       string
	OutputModulePath string
	CMakeRules       []string
}

// Stamp records the content fingerprint last written for a generated file.
type Stamp struct {
	Path        string `json:"path"`
	Fingerprint string `json:"fingerprint"`
}
