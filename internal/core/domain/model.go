// Package domain holds the core types of the benchmark suite generator:
// models, compile configs, generation configs and the rules emitted for them.
package domain

import "go.trai.ch/zerr"

// ModelSourceType identifies the exported format a source model is stored in.
type ModelSourceType string

const (
	// SourceExportedLinalgMLIR is MLIR already in the linalg dialect.
	SourceExportedLinalgMLIR ModelSourceType = "exported-linalg-mlir"
	// SourceExportedTFLite is a TFLite flatbuffer.
	SourceExportedTFLite ModelSourceType = "exported-tflite"
	// SourceExportedTF is a TensorFlow SavedModel.
	SourceExportedTF ModelSourceType = "exported-tf"
)

// MLIRDialectType identifies the MLIR input dialect a model imports into.
type MLIRDialectType string

const (
	DialectLinalg MLIRDialectType = "linalg"
	DialectTOSA   MLIRDialectType = "tosa"
	DialectMHLO   MLIRDialectType = "mhlo"
)

// Model is one source model declared in the manifest.
type Model struct {
	// ID uniquely identifies the model across the suite.
	ID string
	// Name is the human-readable model name, used in artifact filenames.
	Name string
	// SourceType is the exported format the model is stored in.
	SourceType ModelSourceType
	// SourceURL points at the canonical upstream copy of the model.
	SourceURL string
	// EntryFunction names the function to import. Only meaningful for
	// TensorFlow SavedModels.
	EntryFunction string
}

// ImportedModel is a model paired with the MLIR dialect its import produces.
type ImportedModel struct {
	Model       Model
	DialectType MLIRDialectType
}

// NewImportedModel derives the import dialect from the model's source type.
// The mapping is closed: an unknown source type is rejected here rather than
// at rule emission time.
func NewImportedModel(model Model) (ImportedModel, error) {
	var dialect MLIRDialectType
	switch model.SourceType {
	case SourceExportedLinalgMLIR:
		dialect = DialectLinalg
	case SourceExportedTFLite:
		dialect = DialectTOSA
	case SourceExportedTF:
		dialect = DialectMHLO
	default:
		return ImportedModel{}, zerr.With(
			zerr.With(
				zerr.Wrap(ErrUnsupportedSourceType, "deriving dialect type"),
				"source_type", string(model.SourceType)),
			"model", model.ID)
	}

	return ImportedModel{Model: model, DialectType: dialect}, nil
}
