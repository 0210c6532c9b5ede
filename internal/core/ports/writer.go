package ports

// OutputWriter defines the interface for writing generated files.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type OutputWriter interface {
	// Write places data at path, creating parent directories as needed.
	// It reports whether the file content actually changed; unchanged files
	// are left untouched so their mtimes stay stable.
	Write(path string, data []byte) (changed bool, err error)
}
