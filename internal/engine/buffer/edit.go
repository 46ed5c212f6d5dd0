package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// InsertChar inserts s at the cursor.
//
// A single opening character is inserted together with its closer and the
// cursor lands between them. Quotes open a pair even when one sits under the
// cursor. A single closing character that already sits under the cursor is
// typed through: the cursor advances and nothing is inserted. Anything else, including multi-rune strings such as an
// expanded tab, is inserted literally and the cursor advances by its length.
func (b *Buffer) InsertChar(s string) {
	if s == "" {
		return
	}
	line := []rune(b.lines[b.cursor.Line])
	col := b.cursor.Col

	if r, size := utf8.DecodeRuneInString(s); size == len(s) {
		if closer, ok := b.openers[r]; ok {
			b.setLine(b.cursor.Line, spliceRunes(line, col, 0, []rune{r, closer}))
			b.cursor.Col++
			b.modified = true
			return
		}
		if b.closers[r] && col < len(line) && line[col] == r {
			b.cursor.Col++
			return
		}
	}

	ins := []rune(s)
	b.setLine(b.cursor.Line, spliceRunes(line, col, 0, ins))
	b.cursor.Col += len(ins)
	b.modified = true
}

// Backspace removes the rune left of the cursor. At column 0 it joins the
// current line onto the previous one. It does nothing at the document start.
func (b *Buffer) Backspace() {
	if b.cursor.Col > 0 {
		line := []rune(b.lines[b.cursor.Line])
		b.setLine(b.cursor.Line, spliceRunes(line, b.cursor.Col-1, 1, nil))
		b.cursor.Col--
		b.modified = true
		return
	}
	if b.cursor.Line == 0 {
		return
	}
	prev := b.cursor.Line - 1
	joinAt := b.LineLen(prev)
	b.lines[prev] += b.lines[b.cursor.Line]
	b.removeLine(b.cursor.Line)
	b.cursor = Position{Line: prev, Col: joinAt}
	b.modified = true
}

// DeleteForward removes the rune under the cursor. At end of line it pulls
// the next line up. It does nothing at the end of the last line.
func (b *Buffer) DeleteForward() {
	line := []rune(b.lines[b.cursor.Line])
	if b.cursor.Col < len(line) {
		b.setLine(b.cursor.Line, spliceRunes(line, b.cursor.Col, 1, nil))
		b.modified = true
		return
	}
	next := b.cursor.Line + 1
	if next >= len(b.lines) {
		return
	}
	b.lines[b.cursor.Line] += b.lines[next]
	b.removeLine(next)
	b.modified = true
}

// SplitLine breaks the current line at the cursor. The new line starts with
// the leading whitespace of the left half, plus one indent unit when the left
// half (ignoring trailing whitespace) ends with a block opener. The cursor
// moves to the first position after that indentation.
func (b *Buffer) SplitLine() {
	line := []rune(b.lines[b.cursor.Line])
	col := b.cursor.Col
	left := string(line[:col])
	right := string(line[col:])

	indent := leadingWhitespace(left)
	if trimmed := strings.TrimRightFunc(left, unicode.IsSpace); trimmed != "" &&
		strings.ContainsRune(blockOpeners, lastRune(trimmed)) {
		indent += b.indentUnit
	}

	b.lines[b.cursor.Line] = left
	b.insertLine(b.cursor.Line+1, indent+right)
	b.cursor = Position{Line: b.cursor.Line + 1, Col: utf8.RuneCountInString(indent)}
	b.modified = true
}

func (b *Buffer) setLine(i int, runes []rune) {
	b.lines[i] = string(runes)
}

func (b *Buffer) insertLine(i int, text string) {
	b.lines = append(b.lines, "")
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = text
}

func (b *Buffer) removeLine(i int) {
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
}

// spliceRunes returns line with n runes at col replaced by ins.
func spliceRunes(line []rune, col, n int, ins []rune) []rune {
	out := make([]rune, 0, len(line)-n+len(ins))
	out = append(out, line[:col]...)
	out = append(out, ins...)
	return append(out, line[col+n:]...)
}

func leadingWhitespace(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return s
	}
	return s[:end]
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}
