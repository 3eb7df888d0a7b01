package mapping

import (
	"errors"
	"fmt"
)

// Errors returned by tree construction.
var (
	// ErrDuplicate indicates the mode, prefix or command is already defined.
	ErrDuplicate = errors.New("already exists")

	// ErrConflict indicates a key stroke would hold both commands and a prefix.
	ErrConflict = errors.New("conflicts with an existing definition")

	// ErrLeaderDefined indicates the leader was declared more than once.
	ErrLeaderDefined = errors.New("leader already defined")

	// ErrEmptyKey indicates a binding or prefix was declared without a key.
	ErrEmptyKey = errors.New("empty key")

	// ErrEmptyName indicates a prefix or command was declared without a name.
	ErrEmptyName = errors.New("empty name")
)

// Kind identifies the kind of definition that failed.
type Kind uint8

const (
	// KindNormal is a normal mode binding.
	KindNormal Kind = iota
	// KindVisual is a visual mode binding.
	KindVisual
	// KindPrefix is a prefix declaration.
	KindPrefix
	// KindLeader is the leader declaration.
	KindLeader
	// KindCommand is an editor command definition.
	KindCommand
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindVisual:
		return "visual"
	case KindPrefix:
		return "prefix"
	case KindLeader:
		return "leader"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// DefinitionError describes a declaration the tree rejected.
type DefinitionError struct {
	// Kind is what was being defined.
	Kind Kind
	// Key is the key fragment (or command name) of the definition.
	Key string
	// FileType is the effective file type scope, if any.
	FileType string
	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	var msg string
	switch e.Kind {
	case KindCommand:
		msg = fmt.Sprintf("command %q", e.Key)
	case KindLeader:
		msg = fmt.Sprintf("leader %q", e.Key)
	default:
		msg = fmt.Sprintf("%s mapping for %q", e.Kind, e.Key)
	}
	if e.FileType != "" {
		msg += " (filetype " + e.FileType + ")"
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *DefinitionError) Unwrap() error {
	return e.Err
}
