package overlay

import (
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// drawBox clears rect and draws a single-line border around it.
func drawBox(b backend.Backend, rect core.ScreenRect, styles Styles) {
	if rect.Width() < 2 || rect.Height() < 2 {
		b.Fill(rect, core.NewStyledCell(' ', styles.Box))
		return
	}
	b.Fill(rect, core.NewStyledCell(' ', styles.Box))

	top, bottom := rect.Top, rect.Bottom-1
	left, right := rect.Left, rect.Right-1
	for x := left + 1; x < right; x++ {
		b.SetCell(x, top, core.NewStyledCell('─', styles.Border))
		b.SetCell(x, bottom, core.NewStyledCell('─', styles.Border))
	}
	for y := top + 1; y < bottom; y++ {
		b.SetCell(left, y, core.NewStyledCell('│', styles.Border))
		b.SetCell(right, y, core.NewStyledCell('│', styles.Border))
	}
	b.SetCell(left, top, core.NewStyledCell('┌', styles.Border))
	b.SetCell(right, top, core.NewStyledCell('┐', styles.Border))
	b.SetCell(left, bottom, core.NewStyledCell('└', styles.Border))
	b.SetCell(right, bottom, core.NewStyledCell('┘', styles.Border))
}
