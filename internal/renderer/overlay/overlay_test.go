package overlay

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linedit/internal/renderer/backend"
)

type fixture struct {
	b       *backend.NullBackend
	host    *Host
	redraws int
	waits   []time.Duration
	opened  []Type
}

func newFixture(w, h int) *fixture {
	f := &fixture{b: backend.NewNullBackend(w, h)}
	f.host = NewHost(f.b, func() { f.redraws++ })
	f.host.Wait = func(d time.Duration) { f.waits = append(f.waits, d) }
	f.host.OnOpen = func(t Type) { f.opened = append(f.opened, t) }
	return f
}

func TestPromptAccept(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostKeys("abc")
	f.b.PostEvent(backend.KeyEvent(backend.KeyLeft))
	f.b.PostEvent(backend.KeyEvent(backend.KeyBackspace))
	f.b.PostEvent(backend.KeyEvent(backend.KeyEnter))

	got, ok := f.host.Prompt(":")
	require.True(t, ok)
	assert.Equal(t, "ac", got)
	assert.Equal(t, []Type{TypePrompt}, f.opened)
	assert.False(t, f.host.Closed())
}

func TestPromptEscapeCancels(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostKeys("wq")
	f.b.PostEvent(backend.KeyEvent(backend.KeyEscape))
	f.b.PostKeys("ignored")

	got, ok := f.host.Prompt(":")
	assert.False(t, ok)
	assert.Equal(t, "", got)
	assert.Equal(t, 7, f.b.Pending())
}

func TestPromptScreenClosed(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostKeys("x")

	got, ok := f.host.Prompt(":")
	assert.False(t, ok)
	assert.Equal(t, "", got)
	assert.True(t, f.host.Closed())
}

func TestPromptRedrawsOnResize(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostKeys("ab")
	f.b.PostEvent(backend.Event{Type: backend.EventResize, Width: 100, Height: 30})
	f.b.PostEvent(backend.KeyEvent(backend.KeyEnter))

	got, ok := f.host.Prompt("Name: ")
	require.True(t, ok)
	assert.Equal(t, "ab", got)
	assert.Equal(t, 2, f.redraws)
	assert.Equal(t, 1, f.b.Syncs())

	// The box was repainted centered on the new size.
	rect := promptRect(100, 30, "Name: ")
	assert.Contains(t, f.b.Row(rect.Top+1), "Name: ab")
}

func TestPromptDraw(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostKeys("hello")
	f.b.PostEvent(backend.KeyEvent(backend.KeyEnter))
	f.host.Prompt("Save As: ")

	rect := promptRect(80, 24, "Save As: ")
	assert.Equal(t, 69, rect.Width())
	row := f.b.Row(rect.Top + 1)
	assert.Contains(t, row, "│Save As: hello")

	x, y, visible := f.b.CursorPosition()
	assert.True(t, visible)
	assert.Equal(t, rect.Top+1, y)
	assert.Equal(t, rect.Left+1+len("Save As: hello"), x)
}

func TestMessage(t *testing.T) {
	f := newFixture(80, 24)
	f.host.Message("No matches", time.Second)

	assert.Equal(t, []time.Duration{time.Second}, f.waits)
	assert.Equal(t, 1, f.redraws)
	assert.Contains(t, f.b.Screen(), "No matches")
	assert.Equal(t, 0, f.b.Pending())
}

func TestPopupDismissedByAnyKey(t *testing.T) {
	f := newFixture(80, 24)
	f.b.PostEvent(backend.ClickEvent(1, 1))
	f.b.PostKeys("zy")

	f.host.Popup("first\nsecond")

	assert.Equal(t, 1, f.b.Pending(), "the click is ignored and one key dismisses")
	screen := f.b.Screen()
	assert.Contains(t, screen, "│first")
	assert.Contains(t, screen, "│second")
}

func TestPopupCutsOffTallText(t *testing.T) {
	f := newFixture(60, 10)
	f.b.PostKeys(" ")

	var lines []string
	for i := 0; i < 30; i++ {
		lines = append(lines, "line")
	}
	f.host.Popup(strings.Join(lines, "\n"))

	rect := popupRect(60, 10, lines)
	assert.Equal(t, 6, rect.Height())
	assert.Equal(t, 4, strings.Count(f.b.Screen(), "line"))
}

func TestPopupLinesWrap(t *testing.T) {
	got := popupLines("short\n"+strings.Repeat("x", 25), 10)
	assert.Equal(t, []string{"short", "xxxxxxxxxx", "xxxxxxxxxx", "xxxxx"}, got)
	assert.Equal(t, []string{""}, popupLines("", 10))
}

func TestHelp(t *testing.T) {
	f := newFixture(40, 5)
	f.b.PostEvent(backend.KeyEvent(backend.KeyDown))
	f.b.PostEvent(backend.KeyEvent(backend.KeyDown))
	f.b.PostKeys("q")

	f.host.Help("\none\ntwo\nthree\nfour\nfive\nsix\n")

	assert.Equal(t, "three", f.b.Row(0))
	assert.Equal(t, "six", f.b.Row(3))
	assert.Equal(t, "HELP - 3/6 (Esc/q/x to exit, Up/Down to", f.b.Row(4))
	assert.Equal(t, []Type{TypeHelp}, f.opened)
}

func TestHelpExitKeys(t *testing.T) {
	for _, ev := range []backend.Event{
		backend.KeyEvent(backend.KeyEscape),
		backend.RuneEvent('x'),
		backend.RuneEvent('q'),
	} {
		f := newFixture(40, 5)
		f.b.PostEvent(ev)
		f.b.PostKeys("!")
		f.host.Help("a\nb")
		assert.Equal(t, 1, f.b.Pending())
	}
}
