package keymap

import (
	"fmt"
)

// Keymap holds key bindings for a mode.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Mode is the mode this keymap applies to.
	// Empty string means global (all modes).
	Mode string

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined ("default", "config").
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// ForMode sets the mode for this keymap.
func (k *Keymap) ForMode(mode string) *Keymap {
	k.Mode = mode
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add appends a binding.
func (k *Keymap) Add(b Binding) *Keymap {
	k.Bindings = append(k.Bindings, b)
	return k
}

// Set binds keys to action, replacing an existing binding for the same keys.
func (k *Keymap) Set(keys, action string) *Keymap {
	for i := range k.Bindings {
		if k.Bindings[i].Keys == keys {
			k.Bindings[i].Action = action
			return k
		}
	}
	return k.Add(NewBinding(keys, action))
}

// Validate checks that every binding has a parseable key and an action.
func (k *Keymap) Validate() error {
	seen := make(map[string]bool, len(k.Bindings))
	for _, b := range k.Bindings {
		if b.Action == "" {
			return fmt.Errorf("keymap %q: binding %q has no action", k.Name, b.Keys)
		}
		if _, err := b.Parse(); err != nil {
			return fmt.Errorf("keymap %q: %w", k.Name, err)
		}
		if seen[b.Keys] {
			return fmt.Errorf("keymap %q: duplicate binding %q", k.Name, b.Keys)
		}
		seen[b.Keys] = true
	}
	return nil
}
