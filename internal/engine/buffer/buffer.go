package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer is an editable, never-empty sequence of lines with one cursor.
// A Buffer is owned by a single editor session and is not safe for
// concurrent use.
type Buffer struct {
	lines    []string
	cursor   Position
	modified bool

	indentUnit string
	openers    map[rune]rune
	closers    map[rune]bool
}

// New creates a buffer from text. Lines are split on "\n", "\r\n" and "\r";
// a trailing line terminator does not produce an extra empty line.
func New(text string, opts ...Option) *Buffer {
	b := &Buffer{
		lines:      SplitLines(text),
		indentUnit: strings.Repeat(" ", DefaultIndentWidth),
	}
	b.setPairs(DefaultPairs)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Buffer) setPairs(pairs map[rune]rune) {
	b.openers = make(map[rune]rune, len(pairs))
	b.closers = make(map[rune]bool, len(pairs))
	for open, close := range pairs {
		b.openers[open] = close
		b.closers[close] = true
	}
}

// SplitLines splits text into lines the way the buffer loads documents.
// It always returns at least one line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{""}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Text returns the document joined with "\n". No trailing newline is added.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the document lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Line returns the text of line i, or "" when i is out of range.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineCount returns the number of lines; always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the rune length of line i.
func (b *Buffer) LineLen(i int) int {
	return utf8.RuneCountInString(b.Line(i))
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() Position {
	return b.cursor
}

// CursorPosition returns the cursor line and column.
func (b *Buffer) CursorPosition() (line, col int) {
	return b.cursor.Line, b.cursor.Col
}

// SetCursor moves the cursor, clamping it into the document.
func (b *Buffer) SetCursor(p Position) {
	b.cursor = b.clamp(p)
}

// Clamp returns p restricted to a valid cursor position.
func (b *Buffer) Clamp(p Position) Position {
	return b.clamp(p)
}

func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := b.LineLen(p.Line); p.Col > n {
		p.Col = n
	}
	return p
}

// Modified reports whether an edit has changed the document.
func (b *Buffer) Modified() bool {
	return b.modified
}

// SetModified sets the modified flag.
func (b *Buffer) SetModified(modified bool) {
	b.modified = modified
}

// Replace swaps in a copy of lines and moves the cursor to cur (clamped).
// The modified flag is left unchanged.
func (b *Buffer) Replace(lines []string, cur Position) {
	if len(lines) == 0 {
		b.lines = []string{""}
	} else {
		b.lines = make([]string, len(lines))
		copy(b.lines, lines)
	}
	b.cursor = b.clamp(cur)
}

// Equal reports whether the buffer holds exactly lines.
func (b *Buffer) Equal(lines []string) bool {
	if len(lines) != len(b.lines) {
		return false
	}
	for i := range lines {
		if lines[i] != b.lines[i] {
			return false
		}
	}
	return true
}
