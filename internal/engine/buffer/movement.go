package buffer

// MoveLeft moves one rune left, wrapping to the end of the previous line.
func (b *Buffer) MoveLeft() {
	switch {
	case b.cursor.Col > 0:
		b.cursor.Col--
	case b.cursor.Line > 0:
		b.cursor.Line--
		b.cursor.Col = b.LineLen(b.cursor.Line)
	}
}

// MoveRight moves one rune right, wrapping to the start of the next line.
func (b *Buffer) MoveRight() {
	switch {
	case b.cursor.Col < b.LineLen(b.cursor.Line):
		b.cursor.Col++
	case b.cursor.Line < len(b.lines)-1:
		b.cursor.Line++
		b.cursor.Col = 0
	}
}

// MoveUp moves one line up, clamping the column to the new line.
func (b *Buffer) MoveUp() {
	b.MoveLines(-1)
}

// MoveDown moves one line down, clamping the column to the new line.
func (b *Buffer) MoveDown() {
	b.MoveLines(1)
}

// MoveLines moves the cursor n lines (negative is up), keeping the column
// where the target line allows it.
func (b *Buffer) MoveLines(n int) {
	b.cursor = b.clamp(Position{Line: b.cursor.Line + n, Col: b.cursor.Col})
}

// Home moves to the start of the line.
func (b *Buffer) Home() {
	b.cursor.Col = 0
}

// End moves past the last rune of the line.
func (b *Buffer) End() {
	b.cursor.Col = b.LineLen(b.cursor.Line)
}
