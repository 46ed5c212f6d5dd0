package core

import "github.com/mattn/go-runewidth"

// TabWidth is the number of columns a tab character occupies on screen.
const TabWidth = 4

// Cell is a single terminal cell.
type Cell struct {
	Rune  rune
	Width int
	Style Style
}

// EmptyCell returns a blank cell in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1, Style: DefaultStyle()}
}

// NewCell creates a cell with the default style.
func NewCell(r rune) Cell {
	return NewStyledCell(r, DefaultStyle())
}

// NewStyledCell creates a cell with the given style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Width: RuneWidth(r), Style: style}
}

// RuneWidth returns the number of screen columns r occupies. Every rune
// occupies at least one column so that document columns map to distinct
// screen columns; a tab occupies TabWidth.
func RuneWidth(r rune) int {
	if r == '\t' {
		return TabWidth
	}
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the screen width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// ColumnAt returns the screen column of rune index col within line.
func ColumnAt(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	w := 0
	for _, r := range line[:col] {
		w += RuneWidth(r)
	}
	return w
}

// IndexAt returns the rune index within line that covers screen column x.
// Columns past the end of the line map to len(line).
func IndexAt(line []rune, x int) int {
	w := 0
	for i, r := range line {
		w += RuneWidth(r)
		if x < w {
			return i
		}
	}
	return len(line)
}

// Printable maps r to the rune drawn for it on screen.
func Printable(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case r < 0x20 || r == 0x7f:
		return '?'
	}
	return r
}

// Truncate cuts s to at most width screen columns.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if w+rw > width {
			return s[:i]
		}
		w += rw
	}
	return s
}

// PadRight pads s with spaces to exactly width screen columns, truncating it
// first if needed.
func PadRight(s string, width int) string {
	s = Truncate(s, width)
	for w := StringWidth(s); w < width; w++ {
		s += " "
	}
	return s
}
