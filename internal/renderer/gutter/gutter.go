// Package gutter lays out the line-number column to the left of the text.
package gutter

import (
	"strconv"

	"github.com/dshills/linedit/internal/renderer/backend"
	"github.com/dshills/linedit/internal/renderer/core"
)

// Padding is the number of columns the gutter adds beyond the digits of the
// largest line number: one space after the number and one blank separator.
const Padding = 2

// Width returns the gutter width for a document of lineCount lines.
func Width(lineCount int) int {
	return countDigits(max(1, lineCount)) + Padding
}

// Label returns the gutter text for the zero-based line index: the 1-based
// number right-justified in width-Padding columns, followed by a space.
func Label(line, width int) string {
	return PadLeft(strconv.Itoa(line+1), width-Padding) + " "
}

// Draw paints the label for line on row y. The label is clipped to width.
func Draw(b backend.Backend, y, line, width int, style core.Style) {
	backend.DrawString(b, 0, y, width, Label(line, width), style)
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	for len(s) < width {
		s = " " + s
	}
	return s
}

func countDigits(n int) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}
