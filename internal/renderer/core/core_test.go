package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('世'))
	assert.Equal(t, TabWidth, RuneWidth('\t'))
	assert.Equal(t, 1, RuneWidth('\x01'), "control runes still take a column")
}

func TestColumnAndIndex(t *testing.T) {
	line := []rune("a世b")
	assert.Equal(t, 0, ColumnAt(line, 0))
	assert.Equal(t, 1, ColumnAt(line, 1))
	assert.Equal(t, 3, ColumnAt(line, 2))
	assert.Equal(t, 4, ColumnAt(line, 3))
	assert.Equal(t, 4, ColumnAt(line, 99))

	assert.Equal(t, 0, IndexAt(line, 0))
	assert.Equal(t, 1, IndexAt(line, 1))
	assert.Equal(t, 1, IndexAt(line, 2))
	assert.Equal(t, 2, IndexAt(line, 3))
	assert.Equal(t, 3, IndexAt(line, 10))
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "a", Truncate("a世", 2))
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "ab", PadRight("abcd", 2))
}

func TestCentered(t *testing.T) {
	r := Centered(80, 24, 40, 3)
	assert.Equal(t, ScreenRect{Top: 10, Left: 20, Bottom: 13, Right: 60}, r)

	r = Centered(10, 5, 40, 30)
	assert.Equal(t, 10, r.Width())
	assert.Equal(t, 5, r.Height())
	assert.Equal(t, 0, r.Top)
}

func TestRectContains(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)
	assert.True(t, r.Contains(ScreenPos{Row: 1, Col: 2}))
	assert.False(t, r.Contains(ScreenPos{Row: 4, Col: 2}))
	assert.False(t, r.Contains(ScreenPos{Row: 1, Col: 6}))
}

func TestStyleBuilders(t *testing.T) {
	s := DefaultStyle().WithBackground(ColorBlue).Bold()
	assert.True(t, s.Attributes.Has(AttrBold))
	assert.False(t, s.Attributes.Has(AttrDim))
	assert.True(t, s.Foreground.IsDefault())
	assert.Equal(t, ColorBlue, s.Background)
}
