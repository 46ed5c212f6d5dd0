package key

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/linedit/internal/renderer/backend"
)

// Kind classifies an Event.
type Kind uint8

const (
	// KindIgnored marks input the editor has no use for (wheel, right
	// button, unknown keys).
	KindIgnored Kind = iota
	KindKey
	KindClick
	KindResize
	KindClosed
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindClick:
		return "click"
	case KindResize:
		return "resize"
	case KindClosed:
		return "closed"
	default:
		return "ignored"
	}
}

// Event is a single logical input event.
type Event struct {
	Kind Kind
	Key  Key
	Rune rune

	// X and Y hold the cell of a click.
	X, Y int

	// Width and Height hold the new screen size of a resize.
	Width, Height int
}

// NewRuneEvent creates a printable character event.
func NewRuneEvent(r rune) Event {
	return Event{Kind: KindKey, Key: KeyRune, Rune: r}
}

// NewSpecialEvent creates a special key event.
func NewSpecialEvent(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// NewClickEvent creates a left click event at the given screen cell.
func NewClickEvent(x, y int) Event {
	return Event{Kind: KindClick, X: x, Y: y}
}

// IsRune returns true if this is a printable character press.
func (e Event) IsRune() bool {
	return e.Kind == KindKey && e.Key == KeyRune
}

// IsKey returns true if this is a press of the given special key.
func (e Event) IsKey(k Key) bool {
	return e.Kind == KindKey && e.Key == k
}

// String returns the spec form of the event.
func (e Event) String() string {
	switch e.Kind {
	case KindKey:
		if e.Key == KeyRune {
			return string(e.Rune)
		}
		return e.Key.String()
	case KindClick:
		return fmt.Sprintf("Click(%d,%d)", e.X, e.Y)
	case KindResize:
		return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height)
	default:
		return e.Kind.String()
	}
}

// Parse converts a spec string ("a", "Enter", "Ctrl+C") into a key event.
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key spec")
	}
	if k, ok := Lookup(spec); ok {
		return NewSpecialEvent(k), nil
	}
	r, size := utf8.DecodeRuneInString(spec)
	if size == len(spec) && r != utf8.RuneError && unicode.IsPrint(r) {
		return NewRuneEvent(r), nil
	}
	return Event{}, fmt.Errorf("unknown key: %q", spec)
}

var backendKeys = map[backend.Key]Key{
	backend.KeyEscape:    KeyEscape,
	backend.KeyEnter:     KeyEnter,
	backend.KeyTab:       KeyTab,
	backend.KeyBackspace: KeyBackspace,
	backend.KeyDelete:    KeyDelete,
	backend.KeyHome:      KeyHome,
	backend.KeyEnd:       KeyEnd,
	backend.KeyPageUp:    KeyPageUp,
	backend.KeyPageDown:  KeyPageDown,
	backend.KeyUp:        KeyUp,
	backend.KeyDown:      KeyDown,
	backend.KeyLeft:      KeyLeft,
	backend.KeyRight:     KeyRight,
	backend.KeyCtrlC:     KeyInterrupt,
}

// Decode converts a terminal event into a logical event.
func Decode(ev backend.Event) Event {
	switch ev.Type {
	case backend.EventKey:
		if ev.Key == backend.KeyRune {
			if ev.Mod.Has(backend.ModCtrl) && (ev.Rune == 'c' || ev.Rune == 'C') {
				return NewSpecialEvent(KeyInterrupt)
			}
			if !unicode.IsPrint(ev.Rune) || ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
				return Event{}
			}
			return NewRuneEvent(ev.Rune)
		}
		if k, ok := backendKeys[ev.Key]; ok {
			return NewSpecialEvent(k)
		}
		return Event{}
	case backend.EventMouse:
		if ev.MouseButton != backend.MouseLeft {
			return Event{}
		}
		return NewClickEvent(ev.MouseX, ev.MouseY)
	case backend.EventResize:
		return Event{Kind: KindResize, Width: ev.Width, Height: ev.Height}
	case backend.EventClosed:
		return Event{Kind: KindClosed}
	default:
		return Event{}
	}
}
