package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/input/keymap"
	"github.com/dshills/linedit/internal/input/mode"
)

func resolve(t *testing.T, h *Handler, spec string) (Action, bool) {
	t.Helper()
	ev, err := key.Parse(spec)
	require.NoError(t, err)
	return h.Resolve(ev)
}

func TestResolveNormalMode(t *testing.T) {
	h := NewHandler(DefaultConfig())
	require.Equal(t, mode.ModeNormal, h.Mode())

	a, ok := resolve(t, h, "s")
	require.True(t, ok)
	assert.Equal(t, keymap.ActionSave, a.Name)
	assert.Equal(t, SourceKeyboard, a.Source)

	// Editing keys in normal mode produce the hint, never an edit.
	for _, spec := range []string{"z", "Enter", "Backspace", "Delete", "Tab"} {
		a, ok := resolve(t, h, spec)
		require.True(t, ok, spec)
		assert.Equal(t, keymap.ActionInsertHint, a.Name, spec)
		assert.False(t, keymap.IsEdit(a.Name), spec)
	}

	// Escape is a no-op outside insert mode.
	_, ok = resolve(t, h, "Escape")
	assert.False(t, ok)
}

func TestResolveInsertMode(t *testing.T) {
	h := NewHandler(DefaultConfig())
	require.NoError(t, h.ModeManager().Switch(mode.ModeInsert))

	a, ok := resolve(t, h, "s")
	require.True(t, ok)
	assert.Equal(t, keymap.ActionInsertText, a.Name)
	assert.Equal(t, "s", a.Args.Text)

	a, _ = resolve(t, h, "Enter")
	assert.Equal(t, keymap.ActionNewline, a.Name)

	a, _ = resolve(t, h, "Escape")
	assert.Equal(t, keymap.ActionModeNormal, a.Name)

	a, _ = resolve(t, h, "Left")
	assert.Equal(t, keymap.ActionMoveLeft, a.Name)
}

func TestResolveTerminalEvents(t *testing.T) {
	h := NewHandler(DefaultConfig())

	a, ok := h.Resolve(key.NewClickEvent(7, 2))
	require.True(t, ok)
	assert.Equal(t, keymap.ActionClick, a.Name)
	assert.Equal(t, ActionArgs{X: 7, Y: 2}, a.Args)
	assert.Equal(t, SourceMouse, a.Source)

	a, ok = h.Resolve(key.Event{Kind: key.KindResize, Width: 10, Height: 5})
	require.True(t, ok)
	assert.Equal(t, ActionRedraw, a.Name)

	a, ok = h.Resolve(key.Event{Kind: key.KindClosed})
	require.True(t, ok)
	assert.Equal(t, keymap.ActionForceQuit, a.Name)

	_, ok = h.Resolve(key.Event{})
	assert.False(t, ok)
}

func TestResolveMouseDisabled(t *testing.T) {
	h := NewHandler(Config{})
	_, ok := h.Resolve(key.NewClickEvent(1, 1))
	assert.False(t, ok)
}

func TestKeymapOverrideApplies(t *testing.T) {
	h := NewHandler(DefaultConfig())
	require.NoError(t, h.Keymaps().Override(mode.ModeNormal, "w", keymap.ActionSave))

	a, ok := resolve(t, h, "w")
	require.True(t, ok)
	assert.Equal(t, keymap.ActionSave, a.Name)
}

func TestActionSourceString(t *testing.T) {
	assert.Equal(t, "keyboard", SourceKeyboard.String())
	assert.Equal(t, "command", SourceCommand.String())
	assert.Equal(t, "unknown", ActionSource(99).String())
}
