package mode

import (
	"github.com/dshills/linedit/internal/input/key"
)

// InsertMode inserts printable keys as text.
type InsertMode struct{}

// NewInsertMode creates a new insert mode instance.
func NewInsertMode() *InsertMode {
	return &InsertMode{}
}

// Name returns the mode identifier.
func (m *InsertMode) Name() string {
	return ModeInsert
}

// DisplayName returns the human-readable mode name.
func (m *InsertMode) DisplayName() string {
	return "INSERT"
}

// CursorStyle returns the cursor style for insert mode.
func (m *InsertMode) CursorStyle() CursorStyle {
	return CursorBar
}

// Enter is called when entering insert mode.
func (m *InsertMode) Enter(ctx *Context) error {
	return nil
}

// Exit is called when leaving insert mode.
func (m *InsertMode) Exit(ctx *Context) error {
	return nil
}

// HandleUnmapped inserts printable characters.
func (m *InsertMode) HandleUnmapped(event key.Event) *UnmappedResult {
	if event.IsRune() {
		return &UnmappedResult{InsertText: string(event.Rune), Consumed: true}
	}
	return nil
}
