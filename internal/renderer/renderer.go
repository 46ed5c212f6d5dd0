package renderer

import (
	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
	"github.com/dshills/linedit/internal/renderer/gutter"
	"github.com/dshills/linedit/internal/renderer/highlight"
	"github.com/dshills/linedit/internal/renderer/statusline"
	"github.com/dshills/linedit/internal/renderer/viewport"
)

// ReservedRows is the number of rows below the text region: the separator
// and the status bar.
const ReservedRows = 2

// Document provides read access to the lines and cursor being rendered.
type Document interface {
	LineCount() int
	Line(i int) string
	CursorPosition() (line, col int)
}

// Options configures the renderer.
type Options struct {
	Theme         *highlight.Theme
	Gutter        core.Style
	GutterCurrent core.Style
	CurrentLine   core.Style
	Separator     rune
}

// DefaultOptions returns the default colors.
func DefaultOptions() Options {
	return Options{
		Theme:         highlight.DefaultTheme(),
		Gutter:        core.NewStyle(core.ColorGray),
		GutterCurrent: core.NewStyle(core.ColorYellow).Bold(),
		CurrentLine:   core.DefaultStyle().WithBackground(core.ColorBlue),
		Separator:     '-',
	}
}

// Renderer draws frames on a backend.
type Renderer struct {
	opts    Options
	backend backend.Backend

	width  int
	height int

	viewport    *viewport.Viewport
	status      *statusline.StatusLine
	highlighter highlight.Highlighter

	gutterWidth int
}

// New creates a renderer drawing on b.
func New(b backend.Backend, opts Options) *Renderer {
	if opts.Theme == nil {
		opts.Theme = highlight.DefaultTheme()
	}
	if opts.Separator == 0 {
		opts.Separator = '-'
	}
	width, height := b.Size()
	return &Renderer{
		opts:        opts,
		backend:     b,
		width:       width,
		height:      height,
		viewport:    viewport.NewViewport(width, height-ReservedRows),
		status:      statusline.New(),
		highlighter: highlight.For(""),
	}
}

// Viewport returns the scroll state carried between frames.
func (r *Renderer) Viewport() *viewport.Viewport {
	return r.viewport
}

// StatusLine returns the status bar component.
func (r *Renderer) StatusLine() *statusline.StatusLine {
	return r.status
}

// GutterWidth returns the gutter width of the last frame.
func (r *Renderer) GutterWidth() int {
	return r.gutterWidth
}

// Size returns the screen size seen by the last frame.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// TextHeight returns the number of document rows on screen.
func (r *Renderer) TextHeight() int {
	return max(1, r.height-ReservedRows)
}

// Invalidate forces the next frame to repaint the whole screen.
func (r *Renderer) Invalidate() {
	r.width, r.height = -1, -1
}

// Render paints one frame of doc with the given status.
func (r *Renderer) Render(doc Document, info statusline.Info) {
	w, h := r.backend.Size()
	resized := w != r.width || h != r.height
	r.width, r.height = w, h

	if r.highlighter.Language() != info.Language {
		r.highlighter = highlight.For(info.Language)
	}

	total := doc.LineCount()
	r.gutterWidth = gutter.Width(total)
	if w-r.gutterWidth < 1 {
		// No room for text next to the line numbers.
		r.gutterWidth = 0
	}
	textH := r.TextHeight()
	r.viewport.Resize(w-r.gutterWidth, textH)

	curLine, curCol := doc.CursorPosition()
	curRunes := []rune(doc.Line(curLine))
	displayCol := core.ColumnAt(curRunes, curCol)
	r.viewport.Follow(curLine, displayCol, total)

	r.backend.Clear()
	top := r.viewport.TopLine()
	for line := top; line < total && r.viewport.IsLineVisible(line); line++ {
		r.drawLine(line-top, line, line == curLine, doc.Line(line))
	}

	if h >= ReservedRows {
		sep := core.NewStyledCell(r.opts.Separator, core.DefaultStyle())
		r.backend.Fill(core.RectFromSize(h-2, 0, 1, w), sep)
	}
	if h >= 1 {
		r.status.Set(info)
		r.status.Render(r.backend, h-1, w)
	}

	row, col := r.viewport.ToView(curLine, displayCol)
	r.backend.ShowCursor(min(r.gutterWidth+col, max(0, w-1)), row)

	if resized {
		r.backend.Sync()
	} else {
		r.backend.Show()
	}
}

func (r *Renderer) drawLine(y, line int, current bool, text string) {
	gutterStyle := r.opts.Gutter
	if current {
		gutterStyle = r.opts.GutterCurrent
	}
	if r.gutterWidth > 0 {
		gutter.Draw(r.backend, y, line, r.gutterWidth, gutterStyle)
	}

	bg := core.ColorDefault
	if current {
		bg = r.opts.CurrentLine.Background
		r.backend.Fill(core.RectFromSize(y, r.gutterWidth, 1, r.width-r.gutterWidth),
			core.NewStyledCell(' ', r.opts.CurrentLine))
	}

	runes := []rune(text)
	left := r.viewport.LeftColumn()
	col := 0
	for _, tok := range r.highlighter.Tokenize(text) {
		style := r.opts.Theme.StyleFor(tok.Type)
		if current {
			style = style.WithBackground(bg)
		}
		for _, ch := range runes[tok.Start:tok.End] {
			rw := core.RuneWidth(ch)
			start := col
			col += rw
			if col <= left {
				continue
			}
			x := r.gutterWidth + start - left
			if x+rw > r.width {
				return
			}
			if start < left {
				// A wide rune cut by the left edge.
				for i := r.gutterWidth; i < x+rw; i++ {
					r.backend.SetCell(i, y, core.NewStyledCell(' ', style))
				}
				continue
			}
			backend.DrawString(r.backend, x, y, r.width, string(ch), style)
		}
	}
}

// HitTest maps a screen cell to a document position. ok is false when the
// cell is outside the text region. The returned column is a rune index
// clamped to the line.
func (r *Renderer) HitTest(doc Document, x, y int) (line, col int, ok bool) {
	if y < 0 || y >= r.TextHeight() || y >= r.height-ReservedRows {
		return 0, 0, false
	}
	line, column := r.viewport.FromView(y, x-r.gutterWidth)
	line = min(max(0, line), doc.LineCount()-1)
	column = max(0, column)
	return line, core.IndexAt([]rune(doc.Line(line)), column), true
}
