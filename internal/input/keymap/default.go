package keymap

import "github.com/dshills/linedit/internal/input/mode"

// LoadDefaults loads all default keymaps into the registry.
func LoadDefaults(r *Registry) error {
	keymaps := []*Keymap{
		DefaultNormalKeymap(),
		DefaultInsertKeymap(),
		DefaultGlobalKeymap(),
	}

	for _, km := range keymaps {
		if err := r.Register(km); err != nil {
			return err
		}
	}

	return nil
}

// NewDefaultRegistry returns a registry loaded with the default keymaps.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := LoadDefaults(r); err != nil {
		// The default tables are static and validated by tests.
		panic(err)
	}
	return r
}

// DefaultNormalKeymap returns default normal mode bindings.
func DefaultNormalKeymap() *Keymap {
	return &Keymap{
		Name:   "default-normal",
		Mode:   mode.ModeNormal,
		Source: "default",
		Bindings: []Binding{
			{Keys: "i", Action: ActionModeInsert, Description: "Enter insert mode", Category: "Mode"},
			{Keys: ":", Action: ActionCommandLine, Description: "Command line", Category: "Mode"},

			{Keys: "n", Action: ActionSearchNext, Description: "Next match", Category: "Search"},
			{Keys: "N", Action: ActionSearchPrev, Description: "Previous match", Category: "Search"},

			{Keys: "s", Action: ActionSave, Description: "Save", Category: "File"},
			{Keys: "o", Action: ActionSaveAs, Description: "Save as", Category: "File"},
			{Keys: "x", Action: ActionSaveAndExit, Description: "Save and exit", Category: "File"},
			{Keys: "q", Action: ActionQuit, Description: "Quit without saving", Category: "File"},

			{Keys: "c", Action: ActionCopy, Description: "Copy document to clipboard", Category: "Clipboard"},

			{Keys: "Ctrl+C", Action: ActionInterrupt, Description: "Exit, offering to save", Category: "File"},
		},
	}
}

// DefaultInsertKeymap returns default insert mode bindings.
func DefaultInsertKeymap() *Keymap {
	return &Keymap{
		Name:   "default-insert",
		Mode:   mode.ModeInsert,
		Source: "default",
		Bindings: []Binding{
			{Keys: "Escape", Action: ActionModeNormal, Description: "Return to normal mode", Category: "Mode"},
			{Keys: "Ctrl+C", Action: ActionModeNormal, Description: "Return to normal mode", Category: "Mode"},

			{Keys: "Enter", Action: ActionNewline, Description: "Split line", Category: "Editing"},
			{Keys: "Backspace", Action: ActionBackspace, Description: "Delete left", Category: "Editing"},
			{Keys: "Delete", Action: ActionDelete, Description: "Delete right", Category: "Editing"},
			{Keys: "Tab", Action: ActionInsertTab, Description: "Insert spaces", Category: "Editing"},
		},
	}
}

// DefaultGlobalKeymap returns bindings active in every mode.
func DefaultGlobalKeymap() *Keymap {
	return &Keymap{
		Name:   "default-global",
		Mode:   "",
		Source: "default",
		Bindings: []Binding{
			{Keys: "Left", Action: ActionMoveLeft, Description: "Move left", Category: "Movement"},
			{Keys: "Right", Action: ActionMoveRight, Description: "Move right", Category: "Movement"},
			{Keys: "Up", Action: ActionMoveUp, Description: "Move up", Category: "Movement"},
			{Keys: "Down", Action: ActionMoveDown, Description: "Move down", Category: "Movement"},
			{Keys: "PageUp", Action: ActionPageUp, Description: "Half page up", Category: "Movement"},
			{Keys: "PageDown", Action: ActionPageDown, Description: "Half page down", Category: "Movement"},
			{Keys: "Home", Action: ActionLineStart, Description: "Line start", Category: "Movement"},
			{Keys: "End", Action: ActionLineEnd, Description: "Line end", Category: "Movement"},
		},
	}
}
