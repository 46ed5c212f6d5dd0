// Package viewport tracks which part of the document is visible in the
// text region of the screen.
//
// Rows are document lines. Columns are screen columns within a line, so a
// wide rune occupies two of them. The text region excludes the gutter and the
// rows reserved for the status bar; callers size the viewport accordingly.
package viewport

// Viewport is the visible window onto the document.
type Viewport struct {
	topLine    int
	leftColumn int

	// Size of the text region in screen cells.
	width  int
	height int
}

// NewViewport creates a viewport with the given text region size.
// Width and height are clamped to a minimum of 1.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize updates the text region size.
// Width and height are clamped to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	v.width = max(1, width)
	v.height = max(1, height)
}

// Width returns the text region width.
func (v *Viewport) Width() int { return v.width }

// Height returns the text region height.
func (v *Viewport) Height() int { return v.height }

// TopLine returns the first visible line.
func (v *Viewport) TopLine() int { return v.topLine }

// LeftColumn returns the first visible screen column.
func (v *Viewport) LeftColumn() int { return v.leftColumn }

// HalfPage returns the distance moved by page up and page down.
func (v *Viewport) HalfPage() int {
	return max(1, v.height/2)
}

// Follow scrolls the viewport so that the cursor at (line, column) is
// visible. column is a screen column within the line. totalLines is the
// document length.
//
// The top line is kept within [0, max(0, totalLines-height)]. When the cursor
// runs off the right edge, the view jumps so the cursor sits two columns
// from the right edge.
func (v *Viewport) Follow(line, column, totalLines int) {
	line = max(0, line)
	column = max(0, column)

	if line < v.topLine {
		v.topLine = line
	} else if line >= v.topLine+v.height {
		v.topLine = line - v.height + 1
	}
	maxTop := max(0, totalLines-v.height)
	v.topLine = min(max(0, v.topLine), maxTop)

	if column < v.leftColumn {
		v.leftColumn = column
	} else if column >= v.leftColumn+v.width {
		v.leftColumn = column - max(0, v.width-2)
	}
	v.leftColumn = max(0, v.leftColumn)
}

// ScrollTo sets the top line directly, clamped to the document.
func (v *Viewport) ScrollTo(line, totalLines int) {
	v.topLine = min(max(0, line), max(0, totalLines-v.height))
}

// Reset scrolls back to the top-left corner.
func (v *Viewport) Reset() {
	v.topLine = 0
	v.leftColumn = 0
}

// IsLineVisible returns true if line is within the viewport.
func (v *Viewport) IsLineVisible(line int) bool {
	return line >= v.topLine && line < v.topLine+v.height
}

// ToView converts a document position to a cell offset within the text
// region. The result is only inside the region when the position is visible.
func (v *Viewport) ToView(line, column int) (row, col int) {
	return line - v.topLine, column - v.leftColumn
}

// FromView converts a cell offset within the text region to a document line
// and screen column.
func (v *Viewport) FromView(row, col int) (line, column int) {
	return row + v.topLine, col + v.leftColumn
}
