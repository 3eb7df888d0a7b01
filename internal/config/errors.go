package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownSetting indicates a setting name that does not exist.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrInvalidValue indicates a setting holds a value of the wrong type or range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrFileNotFound indicates an explicitly requested configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")
)

// ValidationError describes a rejected setting.
type ValidationError struct {
	// Key is the setting path, e.g. watch.debounce.
	Key string
	// Message describes the problem.
	Message string
	// Value is the rejected value.
	Value any
	// Err is ErrUnknownSetting or ErrInvalidValue.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("%s: %s (value: %v)", e.Key, e.Message, e.Value)
}

// Unwrap returns the underlying sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(key, message string, value any) error {
	return &ValidationError{Key: key, Message: message, Value: value, Err: ErrInvalidValue}
}
