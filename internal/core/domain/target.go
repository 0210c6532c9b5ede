package domain

// Architecture identifies a device architecture modules are compiled for.
type Architecture string

const (
	ArchX86_64    Architecture = "x86_64"
	ArchRV64      Architecture = "riscv_64"
	ArchRV32      Architecture = "riscv_32"
	ArchAdreno    Architecture = "adreno"
	ArchMali      Architecture = "mali"
	ArchARMv8_2_A Architecture = "armv8.2-a"
	ArchCUDA      Architecture = "cuda"
	ArchVMVX      Architecture = "vmvx"
)

// TargetBackend identifies the compiler backend that produces device code.
type TargetBackend string

const (
	BackendLLVMCPU     TargetBackend = "llvm-cpu"
	BackendCUDA        TargetBackend = "cuda"
	BackendVulkanSPIRV TargetBackend = "vulkan-spirv"
	BackendVMVX        TargetBackend = "vmvx"
)

// TargetABI identifies the ABI of the execution environment.
type TargetABI string

const (
	ABILinuxGNU       TargetABI = "linux-gnu"
	ABILinuxAndroid29 TargetABI = "linux-android29"
)

// ArchitectureInfo pairs an architecture with an optional microarchitecture
// refinement, such as a concrete CPU or GPU family.
type ArchitectureInfo struct {
	Architecture      Architecture
	Microarchitecture string
}

// CompileTarget describes the device a module is compiled for.
type CompileTarget struct {
	TargetBackend      TargetBackend
	TargetArchitecture ArchitectureInfo
	TargetABI          TargetABI
}
