package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsInDocumentOrder(t *testing.T) {
	x := New()
	n := x.Run("o", []string{"foo", "bar", "йo o"})

	require.Equal(t, 4, n)
	assert.Equal(t, []Match{
		{Line: 0, Col: 1, Len: 1},
		{Line: 0, Col: 2, Len: 1},
		{Line: 2, Col: 1, Len: 1},
		{Line: 2, Col: 3, Len: 1},
	}, x.matches)
	assert.Equal(t, 0, x.Index())
	assert.False(t, x.Literal())
}

func TestRunRegexp(t *testing.T) {
	x := New()
	x.Run(`d[a-z]+\(`, []string{"def foo(x):", "  do(1) and dx("})

	assert.Equal(t, []Match{
		{Line: 1, Col: 2, Len: 3},
		{Line: 1, Col: 12, Len: 3},
	}, x.matches)
}

func TestNoMatches(t *testing.T) {
	x := New()
	assert.Equal(t, 0, x.Run("zzz", []string{"abc"}))
	assert.Equal(t, -1, x.Index())
	assert.True(t, x.Active())

	_, ok := x.Next()
	assert.False(t, ok)
	_, ok = x.Previous()
	assert.False(t, ok)
	_, ok = x.Current()
	assert.False(t, ok)
}

func TestWraparound(t *testing.T) {
	x := New()
	require.Equal(t, 3, x.Run("a", []string{"a a", "a"}))

	x.Next()
	x.Next()
	require.Equal(t, 2, x.Index())

	m, ok := x.Next()
	require.True(t, ok)
	assert.Equal(t, 0, x.Index())
	assert.Equal(t, Match{Line: 0, Col: 0, Len: 1}, m)

	m, ok = x.Previous()
	require.True(t, ok)
	assert.Equal(t, 2, x.Index())
	assert.Equal(t, Match{Line: 1, Col: 0, Len: 1}, m)
}

func TestInvalidPatternFallsBackToLiteral(t *testing.T) {
	tests := []struct {
		pattern string
		lines   []string
		want    []Match
	}{
		{"f(", []string{"f(x) + f(y)"}, []Match{{0, 0, 2}, {0, 7, 2}}},
		{"[a", []string{"x[a]", "[a"}, []Match{{0, 1, 2}, {1, 0, 2}}},
		{"*x", []string{"a*x"}, []Match{{0, 1, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			x := New()
			x.Run(tt.pattern, tt.lines)
			assert.True(t, x.Literal())
			assert.Equal(t, tt.want, x.matches)
		})
	}
}

func TestEmptyPatternClears(t *testing.T) {
	x := New()
	x.Run("a", []string{"a"})
	assert.Equal(t, 0, x.Run("", []string{"a"}))
	assert.False(t, x.Active())
	assert.Equal(t, -1, x.Index())
}

func TestResultsAreNotRefreshed(t *testing.T) {
	lines := []string{"abc"}
	x := New()
	x.Run("b", lines)
	lines[0] = "xyz"

	m, ok := x.Current()
	require.True(t, ok)
	assert.Equal(t, Match{Line: 0, Col: 1, Len: 1}, m)
}
