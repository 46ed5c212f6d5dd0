package overlay

import (
	"unicode"

	"github.com/dshills/linedit/internal/renderer/core"
)

// LineInput is an editable single line of text with a cursor.
type LineInput struct {
	text   []rune
	cursor int
	offset int
}

// Insert adds r at the cursor. Non-printable runes are ignored.
func (in *LineInput) Insert(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	in.text = append(in.text, 0)
	copy(in.text[in.cursor+1:], in.text[in.cursor:])
	in.text[in.cursor] = r
	in.cursor++
}

// Backspace removes the rune before the cursor.
func (in *LineInput) Backspace() {
	if in.cursor == 0 {
		return
	}
	in.text = append(in.text[:in.cursor-1], in.text[in.cursor:]...)
	in.cursor--
}

// Delete removes the rune under the cursor.
func (in *LineInput) Delete() {
	if in.cursor >= len(in.text) {
		return
	}
	in.text = append(in.text[:in.cursor], in.text[in.cursor+1:]...)
}

// Left moves the cursor one rune left.
func (in *LineInput) Left() {
	if in.cursor > 0 {
		in.cursor--
	}
}

// Right moves the cursor one rune right.
func (in *LineInput) Right() {
	if in.cursor < len(in.text) {
		in.cursor++
	}
}

// Home moves the cursor to the start.
func (in *LineInput) Home() { in.cursor = 0 }

// End moves the cursor past the last rune.
func (in *LineInput) End() { in.cursor = len(in.text) }

// String returns the current text.
func (in *LineInput) String() string { return string(in.text) }

// Cursor returns the cursor index in runes.
func (in *LineInput) Cursor() int { return in.cursor }

// View returns the part of the text visible in a field of width columns and
// the cursor column within it. The field scrolls to keep the cursor visible.
func (in *LineInput) View(width int) (string, int) {
	if width <= 0 {
		return "", 0
	}
	if in.cursor < in.offset {
		in.offset = in.cursor
	}
	for core.ColumnAt(in.text[in.offset:], in.cursor-in.offset) >= width {
		in.offset++
	}
	visible := core.Truncate(string(in.text[in.offset:]), width)
	return visible, core.ColumnAt(in.text[in.offset:], in.cursor-in.offset)
}
