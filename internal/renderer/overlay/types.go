// Package overlay provides the modal sub-interactions drawn over the editor:
// a single-line prompt, a timed message box, a static popup and a paginated
// help viewer.
//
// Each overlay runs its own event loop on the backend and returns when it is
// dismissed. While an overlay is active it owns all input.
package overlay

import (
	"time"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// Type represents the kind of overlay.
type Type uint8

const (
	TypePrompt Type = iota
	TypeMessage
	TypePopup
	TypeHelp
)

// String returns the string representation of the overlay type.
func (t Type) String() string {
	switch t {
	case TypePrompt:
		return "prompt"
	case TypeMessage:
		return "message"
	case TypePopup:
		return "popup"
	case TypeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Styles used when drawing overlays.
type Styles struct {
	Box    core.Style
	Border core.Style
	Status core.Style
}

// DefaultStyles returns the default overlay styles.
func DefaultStyles() Styles {
	return Styles{
		Box:    core.DefaultStyle(),
		Border: core.NewStyle(core.ColorCyan),
		Status: core.DefaultStyle().Reverse(),
	}
}

// Host runs overlays on a backend.
type Host struct {
	Backend backend.Backend

	// Redraw repaints the editor underneath an overlay. It is called before
	// a box overlay is drawn and after every resize.
	Redraw func()

	// Wait blocks for the display time of a timed message.
	// Defaults to time.Sleep.
	Wait func(time.Duration)

	Styles Styles

	// OnOpen is called with the overlay type each time one opens.
	OnOpen func(Type)

	closed bool
}

// NewHost creates a host drawing on b.
func NewHost(b backend.Backend, redraw func()) *Host {
	return &Host{
		Backend: b,
		Redraw:  redraw,
		Wait:    time.Sleep,
		Styles:  DefaultStyles(),
	}
}

// Closed reports whether the screen was closed while an overlay was waiting
// for input.
func (h *Host) Closed() bool {
	return h.closed
}

func (h *Host) open(t Type) {
	if h.OnOpen != nil {
		h.OnOpen(t)
	}
}

func (h *Host) redraw() {
	if h.Redraw != nil {
		h.Redraw()
	}
}

// next returns the next event that an overlay should react to. Resizes are
// handled here by calling paint again; ok is false once the screen closed.
func (h *Host) next(paint func()) (backend.Event, bool) {
	for {
		ev := h.Backend.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			h.closed = true
			return ev, false
		case backend.EventResize:
			h.Backend.Clear()
			h.Backend.Sync()
			paint()
		case backend.EventKey, backend.EventMouse:
			return ev, true
		}
	}
}
