package domain

// BenchmarkConfig configures how compiled modules are executed by the
// external benchmark tool.
type BenchmarkConfig struct {
	// Tool is the benchmark binary to invoke.
	Tool string
	// Driver selects the runtime HAL driver.
	Driver string
	// Parallelism bounds how many cases run at once.
	Parallelism int
	// ExtraArgs are passed verbatim to every invocation.
	ExtraArgs []string
}

// BenchmarkCase is one module execution derived from a generation config.
type BenchmarkCase struct {
	Name          string
	ModulePath    string
	EntryFunction string
	Args          []string
}

// Manifest is the fully-resolved content of one generation manifest file.
type Manifest struct {
	// PackageName is the CMake package that namespaces every emitted target.
	PackageName string
	// RootPath is the artifact root all generated paths live under.
	RootPath string
	// OutputPath is where the generated rule file is written.
	OutputPath string
	// GenerationConfigs lists the modules to generate, in manifest order.
	GenerationConfigs []ModuleGenerationConfig
	// ModelRules maps each model id to the rule providing its source file.
	ModelRules map[string]ModelRule
	// Benchmark configures module execution. Zero value means benchmarking
	// is not configured.
	Benchmark BenchmarkConfig
}
