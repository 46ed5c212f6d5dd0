package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/input/mode"
)

func lookup(t *testing.T, r *Registry, m, spec string) (string, bool) {
	t.Helper()
	ev, err := key.Parse(spec)
	require.NoError(t, err)
	b, ok := r.Lookup(m, ev)
	return b.Action, ok
}

func TestDefaultKeymapsValidate(t *testing.T) {
	for _, km := range []*Keymap{DefaultNormalKeymap(), DefaultInsertKeymap(), DefaultGlobalKeymap()} {
		assert.NoError(t, km.Validate(), km.Name)
	}
}

func TestNormalBindings(t *testing.T) {
	r := NewDefaultRegistry()

	tests := map[string]string{
		"n":      ActionSearchNext,
		"N":      ActionSearchPrev,
		"s":      ActionSave,
		"o":      ActionSaveAs,
		"x":      ActionSaveAndExit,
		"q":      ActionQuit,
		"c":      ActionCopy,
		"i":      ActionModeInsert,
		":":      ActionCommandLine,
		"Ctrl+C": ActionInterrupt,
		"Up":     ActionMoveUp,
		"End":    ActionLineEnd,
	}
	for spec, want := range tests {
		got, ok := lookup(t, r, mode.ModeNormal, spec)
		assert.True(t, ok, spec)
		assert.Equal(t, want, got, spec)
	}

	for _, spec := range []string{"a", "Enter", "Backspace", "Escape"} {
		_, ok := lookup(t, r, mode.ModeNormal, spec)
		assert.False(t, ok, "%s should be unbound in normal mode", spec)
	}
}

func TestInsertBindings(t *testing.T) {
	r := NewDefaultRegistry()

	got, ok := lookup(t, r, mode.ModeInsert, "Escape")
	require.True(t, ok)
	assert.Equal(t, ActionModeNormal, got)

	got, _ = lookup(t, r, mode.ModeInsert, "Ctrl+C")
	assert.Equal(t, ActionModeNormal, got)

	got, _ = lookup(t, r, mode.ModeInsert, "PageDown")
	assert.Equal(t, ActionPageDown, got)

	// Letters reach the mode as text, not as commands.
	_, ok = lookup(t, r, mode.ModeInsert, "s")
	assert.False(t, ok)
}

func TestLookupIgnoresNonKeyEvents(t *testing.T) {
	r := NewDefaultRegistry()
	_, ok := r.Lookup(mode.ModeNormal, key.NewClickEvent(1, 1))
	assert.False(t, ok)
}

func TestOverride(t *testing.T) {
	r := NewDefaultRegistry()

	require.NoError(t, r.Override(mode.ModeNormal, "w", ActionSave))
	got, ok := lookup(t, r, mode.ModeNormal, "w")
	require.True(t, ok)
	assert.Equal(t, ActionSave, got)

	// Overrides shadow defaults.
	require.NoError(t, r.Override(mode.ModeNormal, "q", ActionQuitIfSaved))
	got, _ = lookup(t, r, mode.ModeNormal, "q")
	assert.Equal(t, ActionQuitIfSaved, got)

	// Removing the override restores the default.
	require.NoError(t, r.Override(mode.ModeNormal, "q", ""))
	got, _ = lookup(t, r, mode.ModeNormal, "q")
	assert.Equal(t, ActionQuit, got)

	// The first override survives the other edits.
	_, ok = lookup(t, r, mode.ModeNormal, "w")
	assert.True(t, ok)
}

func TestOverrideRejectsBadKey(t *testing.T) {
	r := NewDefaultRegistry()
	assert.Error(t, r.Override(mode.ModeNormal, "Hyper+Q", ActionQuit))
}

func TestValidateDuplicate(t *testing.T) {
	km := NewKeymap("dup").Add(NewBinding("a", ActionSave)).Add(NewBinding("a", ActionQuit))
	assert.Error(t, km.Validate())

	km = NewKeymap("empty").Add(NewBinding("a", ""))
	assert.Error(t, km.Validate())
}

func TestBindingsShadowedGlobalsOmitted(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(NewKeymap("g").Add(NewBinding("Up", "g.up")).Add(NewBinding("Down", "g.down"))))
	require.NoError(t, r.Register(NewKeymap("m").ForMode(mode.ModeNormal).Add(NewBinding("Up", "m.up"))))

	bindings := r.Bindings(mode.ModeNormal)
	require.Len(t, bindings, 2)
	assert.Equal(t, "m.up", bindings[0].Action)
	assert.Equal(t, "g.down", bindings[1].Action)
}

func TestIsEdit(t *testing.T) {
	assert.True(t, IsEdit(ActionInsertText))
	assert.True(t, IsEdit(ActionNewline))
	assert.True(t, IsEdit(ActionBackspace))
	assert.True(t, IsEdit(ActionDelete))
	assert.True(t, IsEdit(ActionInsertTab))
	assert.False(t, IsEdit(ActionMoveUp))
	assert.False(t, IsEdit(ActionSave))
}

func TestUnregister(t *testing.T) {
	r := NewDefaultRegistry()
	r.Unregister("default-global")
	_, ok := lookup(t, r, mode.ModeNormal, "Up")
	assert.False(t, ok)
	assert.Nil(t, r.Get("default-global"))
	assert.NotNil(t, r.Get("default-normal"))
}
