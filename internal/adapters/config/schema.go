package config

// Manifest represents the structure of the kiln.yaml manifest file.
type Manifest struct {
	Package        string             `yaml:"package"`
	Root           string             `yaml:"root" default:"generated/e2e_test_artifacts"`
	Output         string             `yaml:"output" default:"generated_benchmark_suites.cmake"`
	Models         []ModelDTO         `yaml:"models"`
	CompileConfigs []CompileConfigDTO `yaml:"compile_configs"`
	Generation     []GenerationDTO    `yaml:"generation"`
	Benchmark      BenchmarkDTO       `yaml:"benchmark"`
}

// ModelDTO represents a source model declaration.
type ModelDTO struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	URL    string `yaml:"url"`
	File   string `yaml:"file"`
	Entry  string `yaml:"entry"`
}

// CompileConfigDTO represents a named compilation option set.
type CompileConfigDTO struct {
	ID         string      `yaml:"id"`
	Tags       []string    `yaml:"tags"`
	ExtraFlags []string    `yaml:"extra_flags"`
	Targets    []TargetDTO `yaml:"targets"`
}

// TargetDTO represents one compile target inside a compile config.
type TargetDTO struct {
	Backend           string `yaml:"backend"`
	ABI               string `yaml:"abi" default:"linux-gnu"`
	Architecture      string `yaml:"architecture"`
	Microarchitecture string `yaml:"microarchitecture"`
}

// GenerationDTO represents one (model, compile config) pairing.
type GenerationDTO struct {
	Model  string `yaml:"model"`
	Config string `yaml:"config"`
}

// BenchmarkDTO represents the benchmark runner settings.
type BenchmarkDTO struct {
	Tool        string   `yaml:"tool"`
	Driver      string   `yaml:"driver" default:"local-task"`
	Parallelism int      `yaml:"parallelism" default:"1"`
	ExtraArgs   []string `yaml:"extra_args"`
}
