// Package watch recompiles when the declaration file changes.
//
// A FileWatcher reports fsnotify events for one file. It watches the
// file's directory so that editors which save by renaming a temporary file
// over the original are still observed. A Debouncer coalesces the bursts
// of events a single save produces, and Loop runs a callback for each
// coalesced change.
package watch

import (
	"errors"
	"strings"
	"time"
)

// ErrPathNotExist is returned when the watched file's directory is missing.
var ErrPathNotExist = errors.New("path does not exist")

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed.
	OpRename
)

// String returns a human-readable representation of the operation.
// Combined operations are joined with "|".
func (op Op) String() string {
	var parts []string
	for _, o := range []struct {
		op   Op
		name string
	}{
		{OpCreate, "CREATE"},
		{OpWrite, "WRITE"},
		{OpRemove, "REMOVE"},
		{OpRename, "RENAME"},
	} {
		if op.Has(o.op) {
			parts = append(parts, o.name)
		}
	}
	if len(parts) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(parts, "|")
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the operation that occurred.
	Op Op

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// Source delivers file events.
type Source interface {
	// Events returns the channel of file change events.
	// The channel is closed when the source is closed.
	Events() <-chan Event

	// Errors returns the channel of watcher errors.
	// The channel is closed when the source is closed.
	Errors() <-chan error

	// Close stops the source and releases resources.
	Close() error
}
