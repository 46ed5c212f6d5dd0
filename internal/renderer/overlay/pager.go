package overlay

import (
	"fmt"
	"strings"

	"github.com/dshills/linedit/internal/renderer/backend"
)

// Pager is a scrollable view over static lines.
type Pager struct {
	lines  []string
	pos    int
	height int
}

// NewPager creates a pager over text. Leading and trailing blank lines are
// dropped.
func NewPager(text string) *Pager {
	text = strings.Trim(text, "\n")
	return &Pager{lines: strings.Split(text, "\n"), height: 1}
}

// SetHeight sets the number of visible lines and keeps the position valid.
func (p *Pager) SetHeight(height int) {
	p.height = max(1, height)
	p.pos = min(p.pos, p.maxPos())
}

func (p *Pager) maxPos() int {
	return max(0, len(p.lines)-p.height)
}

// Down scrolls one line down.
func (p *Pager) Down() {
	if p.pos < p.maxPos() {
		p.pos++
	}
}

// Up scrolls one line up.
func (p *Pager) Up() {
	if p.pos > 0 {
		p.pos--
	}
}

// PageDown scrolls one screen down.
func (p *Pager) PageDown() {
	p.pos = min(p.maxPos(), p.pos+p.height)
}

// PageUp scrolls one screen up.
func (p *Pager) PageUp() {
	p.pos = max(0, p.pos-p.height)
}

// Pos returns the index of the first visible line.
func (p *Pager) Pos() int { return p.pos }

// Len returns the number of lines.
func (p *Pager) Len() int { return len(p.lines) }

// Visible returns the lines currently in view.
func (p *Pager) Visible() []string {
	end := min(len(p.lines), p.pos+p.height)
	return p.lines[p.pos:end]
}

// Status returns the help viewer status text.
func (p *Pager) Status() string {
	return fmt.Sprintf("HELP - %d/%d (Esc/q/x to exit, Up/Down to scroll)", p.pos+1, len(p.lines))
}

// Help shows text full screen until Escape, q or x is pressed. The last
// row shows the scroll position.
func (h *Host) Help(text string) {
	h.open(TypeHelp)
	p := NewPager(text)

	paint := func() {
		w, sh := h.Backend.Size()
		p.SetHeight(sh - 1)
		h.Backend.Clear()
		for i, ln := range p.Visible() {
			backend.DrawString(h.Backend, 0, i, w, ln, h.Styles.Box)
		}
		backend.DrawString(h.Backend, 0, sh-1, w, p.Status(), h.Styles.Status)
		h.Backend.HideCursor()
		h.Backend.Show()
	}
	paint()

	for {
		ev, ok := h.next(paint)
		if !ok {
			return
		}
		if ev.Type != backend.EventKey {
			continue
		}
		switch {
		case ev.Key == backend.KeyEscape,
			ev.Key == backend.KeyRune && (ev.Rune == 'q' || ev.Rune == 'x'):
			return
		case ev.Key == backend.KeyDown:
			p.Down()
		case ev.Key == backend.KeyUp:
			p.Up()
		case ev.Key == backend.KeyPageDown:
			p.PageDown()
		case ev.Key == backend.KeyPageUp:
			p.PageUp()
		default:
			continue
		}
		paint()
	}
}
