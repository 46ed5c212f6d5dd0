package buffer

import "fmt"

// Position is a cursor location. Line and Col are 0-indexed; Col counts runes
// and may equal the line length (after the last character).
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}
