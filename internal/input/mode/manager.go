package mode

import (
	"fmt"
	"sort"
	"sync"
)

// Manager manages editor modes and coordinates mode transitions.
type Manager struct {
	mu sync.RWMutex

	// modes holds all registered modes by name.
	modes map[string]Mode

	current  Mode
	previous Mode

	// callbacks are notified on mode changes.
	callbacks []ModeChangeCallback
}

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// NewManager creates a new mode manager with no modes registered.
func NewManager() *Manager {
	return &Manager{
		modes: make(map[string]Mode),
	}
}

// NewDefaultManager creates a manager with normal and insert mode
// registered and normal mode active.
func NewDefaultManager() *Manager {
	m := NewManager()
	m.Register(NewNormalMode())
	m.Register(NewInsertMode())
	// Both modes accept Enter unconditionally.
	_ = m.SetInitialMode(ModeNormal)
	return m
}

// Register adds a mode to the manager.
// If a mode with the same name exists, it is replaced.
func (m *Manager) Register(mode Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modes[mode.Name()] = mode
}

// Get returns a mode by name, or nil if not found.
func (m *Manager) Get(name string) Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modes[name]
}

// Current returns the current mode.
// Returns nil if no mode is set.
func (m *Manager) Current() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// CurrentName returns the name of the current mode.
// Returns empty string if no mode is set.
func (m *Manager) CurrentName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Name()
}

// Previous returns the previous mode.
// Returns nil if there is no previous mode.
func (m *Manager) Previous() Mode {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.previous
}

// Switch changes to a different mode.
// Calls Exit() on the current mode and Enter() on the new mode. Switching
// to the current mode is a no-op and notifies nobody.
func (m *Manager) Switch(name string) error {
	m.mu.Lock()

	newMode, ok := m.modes[name]
	if !ok {
		m.mu.Unlock()
		return fmt.Errorf("unknown mode: %s", name)
	}
	if m.current == newMode {
		m.mu.Unlock()
		return nil
	}

	oldMode := m.current
	ctx := &Context{NextMode: name}
	if oldMode != nil {
		if err := oldMode.Exit(ctx); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("exit %s: %w", oldMode.Name(), err)
		}
		ctx.PreviousMode = oldMode.Name()
	}
	ctx.NextMode = ""
	if err := newMode.Enter(ctx); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("enter %s: %w", name, err)
	}

	m.previous = oldMode
	m.current = newMode

	// Copy callbacks to call outside of lock
	callbacks := make([]ModeChangeCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(oldMode, newMode)
		}
	}
	return nil
}

// OnChange registers a callback for mode changes.
// Returns a function to unregister the callback.
func (m *Manager) OnChange(callback ModeChangeCallback) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
	index := len(m.callbacks) - 1

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		// Remove callback by setting to nil (preserves indices)
		if index < len(m.callbacks) {
			m.callbacks[index] = nil
		}
	}
}

// Modes returns the names of all registered modes, sorted.
func (m *Manager) Modes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.modes))
	for name := range m.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetInitialMode sets the initial mode without notifying callbacks.
func (m *Manager) SetInitialMode(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	mode, ok := m.modes[name]
	if !ok {
		return fmt.Errorf("unknown mode: %s", name)
	}
	m.current = mode
	m.previous = nil
	return mode.Enter(&Context{})
}

// IsMode returns true if the current mode matches the given name.
func (m *Manager) IsMode(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil && m.current.Name() == name
}
