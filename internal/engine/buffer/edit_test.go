package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertCharAutoPair(t *testing.T) {
	b := New("ab")
	b.SetCursor(Position{Col: 1})
	b.InsertChar("(")

	assert.Equal(t, "a()b", b.Line(0))
	assert.Equal(t, Position{Col: 2}, b.Cursor())
	assert.True(t, b.Modified())
}

func TestInsertCharAllPairs(t *testing.T) {
	for open, close := range DefaultPairs {
		b := New("")
		b.InsertChar(string(open))
		assert.Equal(t, string(open)+string(close), b.Line(0))
		assert.Equal(t, 1, b.Cursor().Col)
	}
}

func TestInsertCharTypeThrough(t *testing.T) {
	b := New("a)b")
	b.SetCursor(Position{Col: 1})
	b.InsertChar(")")

	assert.Equal(t, "a)b", b.Line(0))
	assert.Equal(t, Position{Col: 2}, b.Cursor())
	assert.False(t, b.Modified(), "typing through does not modify the document")
}

func TestInsertCharCloserWithoutMatch(t *testing.T) {
	b := New("ab")
	b.SetCursor(Position{Col: 1})
	b.InsertChar("]")

	assert.Equal(t, "a]b", b.Line(0))
	assert.Equal(t, 2, b.Cursor().Col)
}

func TestInsertCharQuoteOpensPair(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		col   int
		quote string
		want  string
	}{
		{"empty line", "", 0, "\"", "\"\""},
		{"before same quote", "a\"", 1, "\"", "a\"\"\""},
		{"single quote before single quote", "''", 1, "'", "''''"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.text)
			b.SetCursor(Position{Col: tt.col})
			b.InsertChar(tt.quote)

			assert.Equal(t, tt.want, b.Line(0))
			assert.Equal(t, tt.col+1, b.Cursor().Col)
			assert.True(t, b.Modified())
		})
	}
}

func TestInsertCharLiteralRun(t *testing.T) {
	b := New("x")
	b.InsertChar("    ")

	assert.Equal(t, "    x", b.Line(0))
	assert.Equal(t, 4, b.Cursor().Col)
}

func TestInsertCharPairingDisabled(t *testing.T) {
	b := New("", WithPairs(nil))
	b.InsertChar("(")
	assert.Equal(t, "(", b.Line(0))
	assert.Equal(t, 1, b.Cursor().Col)
}

func TestBackspace(t *testing.T) {
	b := New("abc")
	b.End()
	b.Backspace()
	assert.Equal(t, "ab", b.Line(0))
	assert.Equal(t, 2, b.Cursor().Col)
}

func TestBackspaceJoinsLines(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Position{Line: 1, Col: 0})
	b.Backspace()

	assert.Equal(t, []string{"abcd"}, b.Lines())
	assert.Equal(t, Position{Line: 0, Col: 2}, b.Cursor())
	assert.True(t, b.Modified())
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	b := New("ab")
	b.Backspace()
	assert.Equal(t, []string{"ab"}, b.Lines())
	assert.False(t, b.Modified())
}

func TestDeleteForward(t *testing.T) {
	b := New("abc")
	b.SetCursor(Position{Col: 1})
	b.DeleteForward()
	assert.Equal(t, "ac", b.Line(0))
	assert.Equal(t, 1, b.Cursor().Col)
}

func TestDeleteForwardJoinsNextLine(t *testing.T) {
	b := New("ab\ncd")
	b.End()
	b.DeleteForward()
	assert.Equal(t, []string{"abcd"}, b.Lines())
	assert.Equal(t, Position{Col: 2}, b.Cursor())
}

func TestDeleteForwardAtDocumentEnd(t *testing.T) {
	b := New("ab\ncd")
	b.SetCursor(Position{Line: 1, Col: 2})
	b.DeleteForward()
	assert.Equal(t, []string{"ab", "cd"}, b.Lines())
	assert.False(t, b.Modified())
}

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		col       int
		wantLines []string
		wantCur   Position
	}{
		{"plain", "abcd", 2, []string{"ab", "cd"}, Position{Line: 1, Col: 0}},
		{"inherit indent", "  abcd", 4, []string{"  ab", "  cd"}, Position{Line: 1, Col: 2}},
		{"colon adds indent", "    if x:", 9, []string{"    if x:", "        "}, Position{Line: 1, Col: 8}},
		{"brace adds indent", "fn {", 4, []string{"fn {", "    "}, Position{Line: 1, Col: 4}},
		{"trailing space after opener", "x = [  ", 7, []string{"x = [  ", "    "}, Position{Line: 1, Col: 4}},
		{"blank left half", "    ", 2, []string{"  ", "    "}, Position{Line: 1, Col: 2}},
		{"between pair", "f()", 2, []string{"f(", "    )"}, Position{Line: 1, Col: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(tt.line)
			b.SetCursor(Position{Col: tt.col})
			b.SplitLine()
			assert.Equal(t, tt.wantLines, b.Lines())
			assert.Equal(t, tt.wantCur, b.Cursor())
			assert.True(t, b.Modified())
		})
	}
}

func TestSplitLineCustomIndentWidth(t *testing.T) {
	b := New("def f():", WithIndentWidth(2))
	b.End()
	b.SplitLine()
	assert.Equal(t, []string{"def f():", "  "}, b.Lines())
}

func TestTypingFunctionHeader(t *testing.T) {
	b := New("")
	for _, r := range "def f():" {
		b.InsertChar(string(r))
	}
	b.SplitLine()

	assert.Equal(t, []string{"def f():", "    "}, b.Lines())
	assert.Equal(t, Position{Line: 1, Col: 4}, b.Cursor())
}
