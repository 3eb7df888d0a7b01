// Package output writes compiled Vim script to disk.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const defaultMode fs.FileMode = 0o644

// Result reports the outcome of a Write.
type Result struct {
	// Path is the file written.
	Path string
	// Bytes is the size of the content.
	Bytes int
	// Changed is false when the file already held the content.
	Changed bool
}

// Write stores content at path atomically through a temporary file renamed
// over the destination. Missing parent directories are created. An existing file
// with identical content is left untouched, and an existing file keeps its
// permissions.
func Write(path string, content []byte) (Result, error) {
	res := Result{Path: path, Bytes: len(content)}

	mode := defaultMode
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			return res, nil
		}
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode().Perm()
		}
	case !errors.Is(err, fs.ErrNotExist):
		return res, fmt.Errorf("failed to read %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := renameio.WriteFile(path, content, mode); err != nil {
		return res, fmt.Errorf("failed to write %s: %w", path, err)
	}

	res.Changed = true
	return res, nil
}
