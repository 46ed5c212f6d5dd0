package mode

import (
	"github.com/dshills/linedit/internal/input/key"
)

// Mode names.
const (
	ModeNormal = "normal"
	ModeInsert = "insert"
)

// CursorStyle is the cursor shape a mode asks for.
type CursorStyle uint8

const (
	CursorBlock CursorStyle = iota
	CursorBar
)

// Mode defines the interface for editor modes.
type Mode interface {
	// Name returns the unique mode identifier (e.g., "normal", "insert").
	Name() string

	// DisplayName returns a human-readable name for the status line.
	DisplayName() string

	// CursorStyle returns the cursor style for this mode.
	CursorStyle() CursorStyle

	// Enter is called when entering this mode.
	Enter(ctx *Context) error

	// Exit is called when leaving this mode.
	Exit(ctx *Context) error

	// HandleUnmapped handles key events that have no binding in this mode.
	// Returns nil if the key should be ignored.
	HandleUnmapped(event key.Event) *UnmappedResult
}

// UnmappedResult describes what to do with an unmapped key.
type UnmappedResult struct {
	// Action is the name of an action to execute, if any.
	Action string

	// InsertText is text to insert (for insert mode).
	InsertText string

	// Consumed indicates whether the key was handled.
	Consumed bool
}

// Context provides information during mode transitions.
type Context struct {
	// PreviousMode is the mode being transitioned from (for Enter).
	PreviousMode string

	// NextMode is the mode being transitioned to (for Exit).
	NextMode string
}
