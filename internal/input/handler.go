package input

import (
	"github.com/dshills/linedit/internal/input/key"
	"github.com/dshills/linedit/internal/input/keymap"
	"github.com/dshills/linedit/internal/input/mode"
)

// Action names for events that never reach a keymap.
const (
	// ActionRedraw repaints after a resize.
	ActionRedraw = "view.redraw"
)

// Config configures the input handler.
type Config struct {
	// EnableMouse enables mouse input handling.
	EnableMouse bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnableMouse: true,
	}
}

// Handler is the main entry point for input processing.
// It coordinates key events, modes, and keymaps.
type Handler struct {
	config Config

	modeManager    *mode.Manager
	keymapRegistry *keymap.Registry
}

// NewHandler creates a new input handler with the default modes and
// keymaps. It starts in normal mode.
func NewHandler(config Config) *Handler {
	return &Handler{
		config:         config,
		modeManager:    mode.NewDefaultManager(),
		keymapRegistry: keymap.NewDefaultRegistry(),
	}
}

// ModeManager returns the mode manager.
func (h *Handler) ModeManager() *mode.Manager {
	return h.modeManager
}

// Keymaps returns the keymap registry.
func (h *Handler) Keymaps() *keymap.Registry {
	return h.keymapRegistry
}

// Mode returns the name of the current mode.
func (h *Handler) Mode() string {
	return h.modeManager.CurrentName()
}

// Resolve maps an event to the action it triggers in the current mode.
// It returns false when the event should be ignored.
func (h *Handler) Resolve(ev key.Event) (Action, bool) {
	switch ev.Kind {
	case key.KindClick:
		if !h.config.EnableMouse {
			return Action{}, false
		}
		return Action{
			Name:   keymap.ActionClick,
			Args:   ActionArgs{X: ev.X, Y: ev.Y},
			Source: SourceMouse,
		}, true
	case key.KindResize:
		return Action{Name: ActionRedraw, Source: SourceTerminal}, true
	case key.KindClosed:
		return Action{Name: keymap.ActionForceQuit, Source: SourceTerminal}, true
	case key.KindKey:
	default:
		return Action{}, false
	}

	current := h.modeManager.Current()
	if current == nil {
		return Action{}, false
	}

	if b, ok := h.keymapRegistry.Lookup(current.Name(), ev); ok {
		return NewAction(b.Action), true
	}

	result := current.HandleUnmapped(ev)
	if result == nil || !result.Consumed {
		return Action{}, false
	}
	if result.InsertText != "" {
		return NewAction(keymap.ActionInsertText).WithText(result.InsertText), true
	}
	if result.Action != "" {
		return NewAction(result.Action), true
	}
	return Action{}, false
}
