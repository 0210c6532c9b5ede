package generator

import (
	"fmt"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// ResolveFlags returns the ordered compile flag list for one compile config
// and input dialect. The order is fixed: backend selector, input dialect
// selector, architecture-specific flags, then the config's extra flags
// verbatim. Identical inputs always produce byte-identical flag lists;
// downstream build caching depends on that.
func ResolveFlags(config domain.CompileConfig, dialect domain.MLIRDialectType) ([]string, error) {
	if len(config.CompileTargets) != 1 {
		return nil, zerr.With(
			zerr.With(
				zerr.Wrap(domain.ErrMultipleCompileTargets, "resolving compile flags"),
				"compile_config", config.ID),
			"target_count", fmt.Sprintf("%d", len(config.CompileTargets)))
	}

	target := config.CompileTargets[0]
	flags := []string{
		fmt.Sprintf("--iree-hal-target-backends=%s", target.TargetBackend),
		fmt.Sprintf("--iree-input-type=%s", dialect),
	}

	targetFlags, err := resolveTargetFlags(target)
	if err != nil {
		return nil, zerr.With(err, "compile_config", config.ID)
	}
	flags = append(flags, targetFlags...)
	flags = append(flags, config.ExtraFlags...)
	return flags, nil
}

// resolveTargetFlags dispatches over the closed architecture set. Adding a
// supported architecture means adding exactly one case here.
func resolveTargetFlags(target domain.CompileTarget) ([]string, error) {
	arch := target.TargetArchitecture
	switch arch.Architecture {
	case domain.ArchX86_64:
		return []string{
			fmt.Sprintf("--iree-llvm-target-triple=x86_64-unknown-%s", target.TargetABI),
			fmt.Sprintf("--iree-llvm-target-cpu=%s", strings.ToLower(arch.Microarchitecture)),
		}, nil

	case domain.ArchRV64:
		return []string{
			fmt.Sprintf("--iree-llvm-target-triple=riscv64-pc-%s", target.TargetABI),
			"--iree-llvm-target-cpu=generic-rv64",
			"--iree-llvm-target-abi=lp64d",
			"--iree-llvm-target-cpu-features=+m,+a,+f,+d,+zvl512b,+v",
			"--riscv-v-fixed-length-vector-lmul-max=8",
		}, nil

	case domain.ArchRV32:
		return []string{
			fmt.Sprintf("--iree-llvm-target-triple=riscv32-pc-%s", target.TargetABI),
			"--iree-llvm-target-cpu=generic-rv32",
			"--iree-llvm-target-abi=ilp32",
			"--iree-llvm-target-cpu-features=+m,+a,+f,+zvl512b,+zve32x",
			"--riscv-v-fixed-length-vector-lmul-max=8",
		}, nil

	case domain.ArchAdreno:
		return []string{
			fmt.Sprintf("--iree-vulkan-target-triple=adreno-unknown-%s", target.TargetABI),
		}, nil

	case domain.ArchMali:
		return []string{
			fmt.Sprintf("--iree-vulkan-target-triple=valhall-unknown-%s", target.TargetABI),
		}, nil

	case domain.ArchARMv8_2_A:
		return []string{
			fmt.Sprintf("--iree-llvm-target-triple=aarch64-none-%s", target.TargetABI),
		}, nil

	case domain.ArchCUDA:
		if target.TargetABI != domain.ABILinuxGNU {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrUnsupportedTargetABI, "resolving architecture flags"),
				"target_abi", string(target.TargetABI))
		}
		return []string{
			"--iree-hal-cuda-llvm-target-arch=sm_80",
		}, nil

	case domain.ArchVMVX:
		// VMVX needs no architecture flags.
		return nil, nil

	default:
		return nil, zerr.With(
			zerr.Wrap(domain.ErrUnsupportedArchitecture, "resolving architecture flags"),
			"architecture", string(arch.Architecture))
	}
}
