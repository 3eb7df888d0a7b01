// Package declaration loads mapping declarations and applies them to a
// mapping tree.
//
// Lua declarations are evaluated by the lua subpackage. YAML, TOML and JSON
// declarations decode into a Document, are validated against the schema
// returned by Schema, and are then applied in document order.
package declaration

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dshills/vimmapper/internal/declaration/lua"
	"github.com/dshills/vimmapper/internal/mapping"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader reads declaration files and applies them to a tree.
type Loader struct {
	fs      FileSystem
	format  Format
	timeout time.Duration
	printer func(string)
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem reads declarations through fsys.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithFormat forces a format instead of detecting it from the extension.
func WithFormat(f Format) Option {
	return func(l *Loader) {
		l.format = f
	}
}

// WithTimeout bounds Lua evaluation.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		l.timeout = d
	}
}

// WithPrinter receives output from Lua print calls.
func WithPrinter(fn func(string)) Option {
	return func(l *Loader) {
		l.printer = fn
	}
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		fs:      OSFS{},
		timeout: lua.DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Format returns the format used for path.
func (l *Loader) Format(path string) (Format, error) {
	if l.format != "" {
		return l.format, nil
	}
	return DetectFormat(path)
}

// Load reads the declaration at path and applies it to tree.
func (l *Loader) Load(ctx context.Context, path string, tree *mapping.Tree) error {
	format, err := l.Format(path)
	if err != nil {
		return err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading declaration %s: %w", path, err)
	}
	return l.Apply(ctx, path, data, format, tree)
}

// Apply evaluates data in the given format and applies it to tree. name
// identifies the source in error messages.
func (l *Loader) Apply(ctx context.Context, name string, data []byte, format Format, tree *mapping.Tree) error {
	if format == FormatLua {
		return lua.Evaluate(ctx, tree, bytes.NewReader(data), name,
			lua.WithExecutionTimeout(l.timeout),
			lua.WithPrinter(l.printer),
		)
	}

	doc, err := Decode(name, data, format)
	if err != nil {
		return err
	}
	return doc.Apply(tree)
}
