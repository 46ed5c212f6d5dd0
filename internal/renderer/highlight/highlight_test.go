package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linedit/internal/lang"
	"github.com/dshills/linedit/internal/renderer/core"
)

type typed struct {
	text string
	typ  TokenType
}

func collect(line string, tokens []Token) []typed {
	runes := []rune(line)
	out := make([]typed, len(tokens))
	for i, tok := range tokens {
		out[i] = typed{string(runes[tok.Start:tok.End]), tok.Type}
	}
	return out
}

func TestPythonTokenize(t *testing.T) {
	h := For(lang.Python)
	line := "def f(x): return 'hi'"

	assert.Equal(t, []typed{
		{"def", TokenKeyword},
		{" ", TokenNone},
		{"f", TokenNone},
		{"(", TokenNone},
		{"x", TokenNone},
		{"): ", TokenNone},
		{"return", TokenKeyword},
		{" '", TokenNone},
		{"hi", TokenNone},
		{"'", TokenString},
	}, collect(line, h.Tokenize(line)))
}

func TestPythonStringRun(t *testing.T) {
	h := For(lang.Python)
	line := `"if" x`

	got := collect(line, h.Tokenize(line))
	require.Len(t, got, 4)
	assert.Equal(t, typed{`"`, TokenString}, got[0])
	assert.Equal(t, typed{"if", TokenKeyword}, got[1])
	assert.Equal(t, typed{`" `, TokenString}, got[2])
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	h := NewWordHighlighter(lang.Python, pythonKeywords)
	assert.True(t, h.IsKeyword("None"))
	assert.False(t, h.IsKeyword("none"))
	assert.False(t, h.IsKeyword("define"))
}

func TestTokensCoverLine(t *testing.T) {
	h := For(lang.Python)
	line := "  for é_1 in ranges:  # 世界"
	tokens := h.Tokenize(line)

	pos := 0
	for _, tok := range tokens {
		assert.Equal(t, pos, tok.Start)
		assert.Positive(t, tok.Len())
		pos = tok.End
	}
	assert.Equal(t, len([]rune(line)), pos)
}

func TestOtherLanguagesArePlain(t *testing.T) {
	h := For(lang.JavaScript)
	assert.Equal(t, lang.JavaScript, h.Language())
	assert.Equal(t, []Token{{Start: 0, End: 12}}, h.Tokenize("if (x) {y;}."))
	assert.Nil(t, h.Tokenize(""))
}

func TestThemeFallback(t *testing.T) {
	theme := DefaultTheme()
	assert.True(t, theme.StyleFor(TokenKeyword).Attributes.Has(core.AttrBold))
	assert.Equal(t, core.DefaultStyle(), theme.StyleFor(TokenType(99)))
}
