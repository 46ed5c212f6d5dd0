package overlay

import (
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// promptRect returns the prompt box for a screen of w x h.
func promptRect(w, h int, label string) core.ScreenRect {
	width := max(40, min(w-4, core.StringWidth(label)+60))
	return core.Centered(w, h, width, 3)
}

// Prompt asks for a single line of text. Enter accepts the text; Escape
// cancels and returns an empty string with ok false.
func (h *Host) Prompt(label string) (string, bool) {
	h.open(TypePrompt)
	var in LineInput

	paint := func() {
		h.redraw()
		h.drawPrompt(label, &in)
		h.Backend.Show()
	}
	paint()

	for {
		ev, ok := h.next(paint)
		if !ok {
			return "", false
		}
		if ev.Type != backend.EventKey {
			continue
		}
		switch ev.Key {
		case backend.KeyEnter:
			return in.String(), true
		case backend.KeyEscape, backend.KeyCtrlC:
			return "", false
		case backend.KeyBackspace:
			in.Backspace()
		case backend.KeyDelete:
			in.Delete()
		case backend.KeyLeft:
			in.Left()
		case backend.KeyRight:
			in.Right()
		case backend.KeyHome:
			in.Home()
		case backend.KeyEnd:
			in.End()
		case backend.KeyRune:
			in.Insert(ev.Rune)
		default:
			continue
		}
		h.drawPrompt(label, &in)
		h.Backend.Show()
	}
}

func (h *Host) drawPrompt(label string, in *LineInput) {
	w, sh := h.Backend.Size()
	rect := promptRect(w, sh, label)
	drawBox(h.Backend, rect, h.Styles)

	y := rect.Top + 1
	maxX := rect.Right - 1
	x := backend.DrawString(h.Backend, rect.Left+1, y, maxX, label, h.Styles.Box)
	visible, cx := in.View(maxX - x - 1)
	backend.DrawString(h.Backend, x, y, maxX, visible, h.Styles.Box)
	h.Backend.ShowCursor(x+cx, y)
}
