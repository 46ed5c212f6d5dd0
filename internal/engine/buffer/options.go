package buffer

import "strings"

// DefaultIndentWidth is the number of spaces added after a block opener.
const DefaultIndentWidth = 4

// DefaultPairs maps each auto-paired opener to its closer.
var DefaultPairs = map[rune]rune{
	'{':  '}',
	'[':  ']',
	'(':  ')',
	'<':  '>',
	'"':  '"',
	'\'': '\'',
}

// blockOpeners end a line that should be followed by an extra indent.
const blockOpeners = ":{([<"

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithIndentWidth sets how many spaces SplitLine adds after a block opener.
func WithIndentWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.indentUnit = strings.Repeat(" ", width)
		}
	}
}

// WithPairs replaces the auto-pair table. A nil or empty map disables pairing.
func WithPairs(pairs map[rune]rune) Option {
	return func(b *Buffer) {
		b.setPairs(pairs)
	}
}
