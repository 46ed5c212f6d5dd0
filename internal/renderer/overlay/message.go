package overlay

import (
	"strings"
	"time"

	"github.com/muesli/reflow/wrap"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// Message shows text in a centered box for delay, then returns.
func (h *Host) Message(text string, delay time.Duration) {
	h.open(TypeMessage)
	h.redraw()

	w, sh := h.Backend.Size()
	rect := core.Centered(w, sh, min(w-4, max(40, core.StringWidth(text)+4)), 3)
	drawBox(h.Backend, rect, h.Styles)
	backend.DrawString(h.Backend, rect.Left+2, rect.Top+1, rect.Right-2, text, h.Styles.Box)
	h.Backend.HideCursor()
	h.Backend.Show()

	if h.Wait != nil {
		h.Wait(delay)
	}
}

// popupLines splits text into lines hard-wrapped to width.
func popupLines(text string, width int) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return []string{""}
	}
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		if width > 0 && core.StringWidth(ln) > width {
			out = append(out, strings.Split(wrap.String(ln, width), "\n")...)
			continue
		}
		out = append(out, ln)
	}
	return out
}

// popupRect sizes the popup box for content lines on a w x h screen.
func popupRect(w, h int, lines []string) core.ScreenRect {
	widest := 0
	for _, ln := range lines {
		widest = max(widest, core.StringWidth(ln))
	}
	width := min(w-4, max(40, widest+2))
	height := min(h-4, len(lines)+2)
	return core.Centered(w, h, width, height)
}

// Popup shows multi-line text in a centered box until any key is pressed.
// Lines that do not fit the box are cut off.
func (h *Host) Popup(text string) {
	h.open(TypePopup)

	paint := func() {
		h.redraw()
		w, sh := h.Backend.Size()
		lines := popupLines(text, w-6)
		rect := popupRect(w, sh, lines)
		drawBox(h.Backend, rect, h.Styles)
		for i := 0; i < rect.Height()-2 && i < len(lines); i++ {
			backend.DrawString(h.Backend, rect.Left+1, rect.Top+1+i, rect.Right-1, lines[i], h.Styles.Box)
		}
		h.Backend.HideCursor()
		h.Backend.Show()
	}
	paint()

	for {
		ev, ok := h.next(paint)
		if !ok || ev.Type == backend.EventKey {
			return
		}
	}
}
