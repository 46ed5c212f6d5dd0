package keymap

import (
	"github.com/dshills/linedit/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding ("n", "Enter", "Ctrl+C").
	Keys string

	// Action is the command to execute.
	// Examples: "cursor.moveDown", "file.save", "mode.insert"
	Action string

	// Description provides documentation for the binding.
	Description string

	// Category groups bindings for display purposes.
	Category string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// Parse resolves the binding's key spec into the event it matches.
func (b Binding) Parse() (key.Event, error) {
	return key.Parse(b.Keys)
}
