package highlight

import (
	"unicode"

	"github.com/dshills/linedit/internal/lang"
)

// Highlighter splits a single line into typed tokens. Tokens cover the line
// without gaps.
type Highlighter interface {
	Language() string
	Tokenize(line string) []Token
}

// For returns the highlighter for a language tag.
func For(language string) Highlighter {
	if language == lang.Python {
		return NewWordHighlighter(lang.Python, pythonKeywords)
	}
	return Plain{language: language}
}

// Plain returns the whole line as a single untyped token.
type Plain struct {
	language string
}

// Language returns the language tag.
func (p Plain) Language() string { return p.language }

// Tokenize returns one token covering line.
func (p Plain) Tokenize(line string) []Token {
	n := len([]rune(line))
	if n == 0 {
		return nil
	}
	return []Token{{Start: 0, End: n}}
}

// WordHighlighter alternates runs of word and non-word runes. A word run
// that is a reserved word is a keyword; any run starting with a quote is a
// string.
type WordHighlighter struct {
	language string
	keywords map[string]bool
}

// NewWordHighlighter creates a highlighter for the given reserved words.
func NewWordHighlighter(language string, keywords []string) *WordHighlighter {
	h := &WordHighlighter{
		language: language,
		keywords: make(map[string]bool, len(keywords)),
	}
	for _, kw := range keywords {
		h.keywords[kw] = true
	}
	return h
}

// Language returns the language tag.
func (h *WordHighlighter) Language() string { return h.language }

// Tokenize splits line into word and non-word runs.
func (h *WordHighlighter) Tokenize(line string) []Token {
	runes := []rune(line)
	var tokens []Token
	for start := 0; start < len(runes); {
		word := isWordRune(runes[start])
		end := start + 1
		for end < len(runes) && isWordRune(runes[end]) == word {
			end++
		}
		tok := Token{Start: start, End: end}
		text := string(runes[start:end])
		switch {
		case word && h.keywords[text]:
			tok.Type = TokenKeyword
		case runes[start] == '"' || runes[start] == '\'':
			tok.Type = TokenString
		}
		tokens = append(tokens, tok)
		start = end
	}
	return tokens
}

// IsKeyword reports whether word is reserved.
func (h *WordHighlighter) IsKeyword(word string) bool {
	return h.keywords[word]
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

var pythonKeywords = []string{
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is", "lambda",
	"nonlocal", "not", "or", "pass", "raise", "return", "try", "while", "with", "yield",
}
