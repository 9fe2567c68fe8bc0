// Package filex has small file-system helpers used by the client.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path, if needed.
// In-memory SQLite DSNs and bare file names need nothing and are left alone.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// ReadWithContentType reads the whole file and sniffs its MIME type.
func ReadWithContentType(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return data, http.DetectContentType(data), nil
}
