package keymap

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/linedit/internal/input/key"
)

// Registry manages all keymaps and provides binding lookup.
type Registry struct {
	mu sync.RWMutex

	// keymaps holds all registered keymaps by name.
	keymaps map[string]*Keymap

	// index maps mode -> key event -> binding. Mode "" is global.
	index map[string]map[key.Event]Binding
}

// NewRegistry creates a new keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*Keymap),
		index:   make(map[string]map[key.Event]Binding),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return fmt.Errorf("cannot register nil keymap")
	}
	if err := km.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.keymaps[km.Name] = km
	r.rebuildLocked()
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.keymaps, name)
	r.rebuildLocked()
}

// rebuildLocked recomputes the lookup index. Keymaps are applied in name
// order so later names win on conflicts within a mode.
func (r *Registry) rebuildLocked() {
	names := make([]string, 0, len(r.keymaps))
	for name := range r.keymaps {
		names = append(names, name)
	}
	sort.Strings(names)

	r.index = make(map[string]map[key.Event]Binding)
	for _, name := range names {
		km := r.keymaps[name]
		byKey := r.index[km.Mode]
		if byKey == nil {
			byKey = make(map[key.Event]Binding)
			r.index[km.Mode] = byKey
		}
		for _, b := range km.Bindings {
			ev, err := b.Parse()
			if err != nil {
				continue
			}
			byKey[ev] = b
		}
	}
}

// Lookup finds the binding for an event in the given mode. Mode bindings
// shadow global ones. Only key events can be bound.
func (r *Registry) Lookup(mode string, ev key.Event) (Binding, bool) {
	if ev.Kind != key.KindKey {
		return Binding{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if b, ok := r.index[mode][ev]; ok {
		return b, true
	}
	b, ok := r.index[""][ev]
	return b, ok
}

// Get returns a keymap by name.
func (r *Registry) Get(name string) *Keymap {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.keymaps[name]
}

// Bindings returns every binding active in mode, mode bindings first,
// sorted by key within each group.
func (r *Registry) Bindings(mode string) []Binding {
	r.mu.RLock()
	defer r.mu.RUnlock()

	collect := func(m string, skip map[key.Event]Binding) []Binding {
		out := make([]Binding, 0, len(r.index[m]))
		for ev, b := range r.index[m] {
			if _, shadowed := skip[ev]; shadowed {
				continue
			}
			out = append(out, b)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
		return out
	}

	result := collect(mode, nil)
	if mode != "" {
		result = append(result, collect("", r.index[mode])...)
	}
	return result
}

// Override binds keys to action in mode on top of the registered keymaps.
// An empty action removes the binding from the override keymap.
func (r *Registry) Override(mode, keys, action string) error {
	name := "override-" + mode
	if mode == "" {
		name = "override-global"
	}

	r.mu.RLock()
	existing := r.keymaps[name]
	r.mu.RUnlock()

	km := NewKeymap(name).ForMode(mode).WithSource("config")
	if existing != nil {
		km.Bindings = append(km.Bindings, existing.Bindings...)
	}
	if action == "" {
		kept := km.Bindings[:0]
		for _, b := range km.Bindings {
			if b.Keys != keys {
				kept = append(kept, b)
			}
		}
		km.Bindings = kept
	} else {
		km.Set(keys, action)
	}
	return r.Register(km)
}
