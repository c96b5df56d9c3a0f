package catalog

import (
	"os"
	"path/filepath"
)

// ContentReader is a function that reads file content given a tree-relative
// file path. This allows the caller to control how files are read
// (filesystem, fixture, etc.)
type ContentReader func(filePath string) ([]byte, error)

// Reader returns a ContentReader serving files from the given root directory.
func Reader(root string) ContentReader {
	return func(filePath string) ([]byte, error) {
		return os.ReadFile(filepath.Join(root, filepath.FromSlash(filePath)))
	}
}
