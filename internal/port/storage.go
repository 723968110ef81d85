package port

//go:generate mockgen -source=storage.go -destination=../mock/storage.go -package=mock

import "os"

// FileManager is a port for file system operations backing the durable
// stores (snapshot slot, profiles).
type FileManager interface {
	// ReadFile reads the contents of a file.
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with the given permissions, creating
	// parent directories as needed.
	WriteFile(filename string, data []byte, perm os.FileMode) error

	// FileExists checks if a file exists.
	FileExists(filename string) bool
}
