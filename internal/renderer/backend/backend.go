// Package backend provides the terminal abstraction the editor draws on and
// reads events from.
package backend

import "github.com/dshills/linedit/internal/renderer/core"

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	// EventClosed is delivered once the screen has been finalized and no
	// further input will arrive.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
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
	KeyCtrlC
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// KeyEvent is a convenience constructor for a special key event.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent is a convenience constructor for a character key event.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// ClickEvent is a convenience constructor for a left click.
func ClickEvent(x, y int) Event {
	return Event{Type: EventMouse, MouseX: x, MouseY: y, MouseButton: MouseLeft}
}

// Backend defines the interface for terminal/display backends.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// Fill fills a rectangular region with the given cell.
	Fill(rect core.ScreenRect, cell core.Cell)

	// Clear clears the entire screen with the default style.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// Sync repaints the whole display, discarding what the terminal
	// currently shows.
	Sync()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// This is a blocking call.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue.
	PostEvent(event Event)

	// EnableMouse enables mouse event reporting.
	EnableMouse()
}

// DrawString draws s at (x, y) and returns the column after the last cell
// drawn. Runes that would cross maxX are not drawn. Wide runes are followed
// by a zero-rune continuation cell.
func DrawString(b Backend, x, y, maxX int, s string, style core.Style) int {
	for _, r := range s {
		w := core.RuneWidth(r)
		if x+w > maxX {
			break
		}
		switch {
		case r == '\t':
			for i := 0; i < w; i++ {
				b.SetCell(x+i, y, core.Cell{Rune: ' ', Width: 1, Style: style})
			}
		default:
			b.SetCell(x, y, core.Cell{Rune: core.Printable(r), Width: w, Style: style})
			for i := 1; i < w; i++ {
				b.SetCell(x+i, y, core.Cell{Style: style})
			}
		}
		x += w
	}
	return x
}
