package mode

import (
	"github.com/dshills/linedit/internal/input/key"
)

// ActionInsertHint is the action normal mode emits for keys that would
// edit text.
const ActionInsertHint = "mode.insertHint"

// NormalMode interprets keys as commands. Text editing keys are refused.
type NormalMode struct{}

// NewNormalMode creates a new normal mode instance.
func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

// Name returns the mode identifier.
func (m *NormalMode) Name() string {
	return ModeNormal
}

// DisplayName returns the human-readable mode name.
func (m *NormalMode) DisplayName() string {
	return "NORMAL"
}

// CursorStyle returns the cursor style for normal mode.
func (m *NormalMode) CursorStyle() CursorStyle {
	return CursorBlock
}

// Enter is called when entering normal mode.
func (m *NormalMode) Enter(ctx *Context) error {
	return nil
}

// Exit is called when leaving normal mode.
func (m *NormalMode) Exit(ctx *Context) error {
	return nil
}

// HandleUnmapped turns printable keys and the editing keys into the
// insert hint. Anything else is dropped.
func (m *NormalMode) HandleUnmapped(event key.Event) *UnmappedResult {
	if event.Kind != key.KindKey {
		return nil
	}
	switch event.Key {
	case key.KeyRune, key.KeyEnter, key.KeyBackspace, key.KeyDelete, key.KeyTab:
		return &UnmappedResult{Action: ActionInsertHint, Consumed: true}
	}
	return nil
}
