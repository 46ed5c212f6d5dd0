// Package highlight provides the minimal token highlighting used by the
// renderer. Only Python gets keyword and string coloring; every other
// language is drawn as plain text.
package highlight

// TokenType represents the semantic type of a token.
type TokenType uint8

// Token types for syntax highlighting.
const (
	TokenNone TokenType = iota
	TokenKeyword
	TokenString
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenKeyword:
		return "keyword"
	case TokenString:
		return "string"
	default:
		return "none"
	}
}

// Token is a run of runes [Start, End) within a line.
type Token struct {
	Start int
	End   int
	Type  TokenType
}

// Len returns the token length in runes.
func (t Token) Len() int {
	return t.End - t.Start
}
