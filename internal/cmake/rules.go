// Package cmake emits the literal CMake rule text that makes up the generated
// benchmark suite build files. Callers decide which rules to emit, with what
// arguments and in what order; this package only formats them.
package cmake

import (
	"fmt"
	"strings"
)

// keyword is one KEYWORD "value" line inside a rule call.
type keyword struct {
	name  string
	value string
}

// ImportTfliteModel returns the rule that imports a TFLite flatbuffer into MLIR.
func ImportTfliteModel(targetPath, source, outputMLIRFile string) string {
	return buildCall("iree_import_tflite_model",
		[]keyword{
			{"TARGET_NAME", targetPath},
			{"SOURCE", source},
			{"OUTPUT_MLIR_FILE", outputMLIRFile},
		}, nil, false)
}

// ImportTfModel returns the rule that imports a TensorFlow SavedModel into MLIR.
func ImportTfModel(targetPath, source, entryFunction, outputMLIRFile string) string {
	return buildCall("iree_import_tf_model",
		[]keyword{
			{"TARGET_NAME", targetPath},
			{"SOURCE", source},
			{"ENTRY_FUNCTION", entryFunction},
			{"OUTPUT_MLIR_FILE", outputMLIRFile},
		}, nil, false)
}

// BytecodeModule returns the rule that compiles an imported model into a
// bytecode module with the given flags. Flag order is preserved exactly.
func BytecodeModule(targetName, src, moduleName string, flags []string) string {
	return buildCall("iree_bytecode_module",
		[]keyword{
			{"NAME", targetName},
			{"SRC", src},
			{"MODULE_FILE_NAME", moduleName},
		}, flags, true)
}

// AddDependencies returns the rule binding deps to an aggregate target.
// Dep order is preserved exactly.
func AddDependencies(target string, deps []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "add_dependencies(%s\n", target)
	for _, dep := range deps {
		fmt.Fprintf(&b, "  %s\n", dep)
	}
	b.WriteString(")\n")
	return b.String()
}

// buildCall formats one CMake function call. Keywords come first, one per
// line; an optional FLAGS list follows with one quoted flag per line.
func buildCall(name string, keywords []keyword, flags []string, public bool) string {
	var b strings.Builder
	b.WriteString(name + "(\n")
	for _, kw := range keywords {
		fmt.Fprintf(&b, "  %s %q\n", kw.name, kw.value)
	}
	if flags != nil {
		b.WriteString("  FLAGS\n")
		for _, flag := range flags {
			fmt.Fprintf(&b, "    %q\n", flag)
		}
	}
	if public {
		b.WriteString("  PUBLIC\n")
	}
	b.WriteString(")\n")
	return b.String()
}
