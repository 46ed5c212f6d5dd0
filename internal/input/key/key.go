package key

// Key identifies a keyboard key.
type Key uint8

// Special key constants.
const (
	KeyNone Key = iota

	// KeyRune indicates a printable character; the rune is in Event.Rune.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyInterrupt is Ctrl-C.
	KeyInterrupt
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyInterrupt: "Ctrl+C",
}

var namedKeys = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[name] = k
	}
	return m
}()

// String returns the name of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsArrow returns true if the key is one of the four arrow keys.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsMovement returns true if the key moves the cursor without editing.
func (k Key) IsMovement() bool {
	return k.IsArrow() || (k >= KeyHome && k <= KeyPageDown)
}

// Lookup returns the key with the given name.
func Lookup(name string) (Key, bool) {
	k, ok := namedKeys[name]
	if !ok || k == KeyNone || k == KeyRune {
		return KeyNone, false
	}
	return k, true
}
