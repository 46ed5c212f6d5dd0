package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrFileNotFound indicates that :e named a missing file.
	ErrFileNotFound = errors.New("file not found")

	// ErrSaveCancelled indicates that the filename prompt was dismissed.
	ErrSaveCancelled = errors.New("save cancelled")

	// ErrReadOnly indicates an edit in a read-only session.
	ErrReadOnly = errors.New("document is read-only")

	// ErrUnsavedChanges indicates that :q was refused.
	ErrUnsavedChanges = errors.New("unsaved changes")

	// ErrNoBackend indicates a session was created without a screen.
	ErrNoBackend = errors.New("no backend")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "save", "open")
	Target string // Target of the operation, usually a file path
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches both the wrapper itself and the wrapped error.
func (e *OperationError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*OperationError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}

// IsOperation reports whether err is an OperationError for op.
func IsOperation(err error, op string) bool {
	var opErr *OperationError
	return errors.As(err, &opErr) && opErr.Op == op
}
