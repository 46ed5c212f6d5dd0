package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrValidationFailed indicates a value fails validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrDecodeFailed indicates the merged configuration does not fit Config.
	ErrDecodeFailed = errors.New("config decode failed")
)

// ValidationError describes one invalid setting.
type ValidationError struct {
	// Path is the dotted setting path (e.g., "editor.tab_width").
	Path string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// Unwrap returns ErrValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
