package backend

import (
	"strings"

	"github.com/dshills/linedit/internal/renderer/core"
)

// NullBackend is an in-memory backend for tests. Events are queued with
// PostEvent; once the queue is drained PollEvent reports EventClosed so an
// event loop under test always terminates.
type NullBackend struct {
	width, height int
	cells         [][]core.Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	events        []Event
	shows         int
	syncs         int
	clears        int
	mouse         bool
}

// NewNullBackend creates a null backend with the given dimensions.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{width: width, height: height}
	b.allocate()
	return b
}

func (b *NullBackend) allocate() {
	b.cells = make([][]core.Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]core.Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) {
	return b.width, b.height
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// GetCell returns the cell at the given position, or an empty cell when the
// position is off screen.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	for y := max(0, rect.Top); y < rect.Bottom && y < b.height; y++ {
		for x := max(0, rect.Left); x < rect.Right && x < b.width; x++ {
			b.cells[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.clears++
	empty := core.EmptyCell()
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = empty
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) Sync() { b.syncs++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *NullBackend) HideCursor() {
	b.cursorVisible = false
}

func (b *NullBackend) PollEvent() Event {
	if len(b.events) == 0 {
		return Event{Type: EventClosed}
	}
	ev := b.events[0]
	b.events = b.events[1:]
	if ev.Type == EventResize {
		b.Resize(ev.Width, ev.Height)
	}
	return ev
}

func (b *NullBackend) PostEvent(event Event) {
	b.events = append(b.events, event)
}

func (b *NullBackend) EnableMouse() { b.mouse = true }

// PostKeys queues one key event per rune of s.
func (b *NullBackend) PostKeys(s string) {
	for _, r := range s {
		b.PostEvent(RuneEvent(r))
	}
}

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int {
	return len(b.events)
}

// CursorPosition returns the current cursor position for testing.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// Row returns the text of screen row y with trailing blanks removed.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y][x]
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Screen returns all rows joined by newlines.
func (b *NullBackend) Screen() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Syncs returns how many full repaints were requested.
func (b *NullBackend) Syncs() int { return b.syncs }

// Shows returns how many frames were flushed.
func (b *NullBackend) Shows() int { return b.shows }

// MouseEnabled reports whether EnableMouse was called.
func (b *NullBackend) MouseEnabled() bool { return b.mouse }

// Resize simulates a terminal resize. The screen contents are discarded.
func (b *NullBackend) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
}
