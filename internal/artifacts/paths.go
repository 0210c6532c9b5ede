// Package artifacts computes the canonical on-disk layout of generated
// artifacts. Paths use forward slashes regardless of platform so generated
// build files are byte-identical everywhere.
package artifacts

import (
	"path"

	"go.trai.ch/kiln/internal/core/domain"
)

// ModuleFilename is the fixed name of a compiled bytecode module inside its
// module directory.
const ModuleFilename = "module.vmfb"

// ImportedModelPath returns the path of a model's imported MLIR file under root.
func ImportedModelPath(imported domain.ImportedModel, root string) string {
	return path.Join(root, imported.Model.ID, imported.Model.Name+".mlir")
}

// ModuleDirPath returns the directory holding the compiled module for one
// generation config under root.
func ModuleDirPath(config domain.ModuleGenerationConfig, root string) string {
	return path.Join(root, config.ImportedModel.Model.ID, config.CompileConfig.ID)
}

// ModulePath returns the full path of the compiled module file for one
// generation config under root.
func ModulePath(config domain.ModuleGenerationConfig, root string) string {
	return path.Join(ModuleDirPath(config, root), ModuleFilename)
}
