package declaration

import (
	"errors"
	"fmt"
)

// Errors returned while loading declarations.
var (
	// ErrUnknownFormat indicates the declaration format could not be determined.
	ErrUnknownFormat = errors.New("unknown declaration format")

	// ErrInvalidDocument indicates a data document is well formed but
	// describes an impossible tree.
	ErrInvalidDocument = errors.New("invalid declaration document")
)

// ParseError represents an error while decoding or validating a declaration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Line is the line number where the error occurred (if available).
	Line int
	// Column is the column number where the error occurred (if available).
	Column int
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
