package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewViewportClampsSize(t *testing.T) {
	v := NewViewport(0, -3)
	assert.Equal(t, 1, v.Width())
	assert.Equal(t, 1, v.Height())
}

func TestFollowVertical(t *testing.T) {
	v := NewViewport(80, 10)

	v.Follow(15, 0, 100)
	assert.Equal(t, 6, v.TopLine())

	v.Follow(8, 0, 100)
	assert.Equal(t, 6, v.TopLine(), "visible cursor does not scroll")

	v.Follow(2, 0, 100)
	assert.Equal(t, 2, v.TopLine())
}

func TestFollowClampsTopLine(t *testing.T) {
	v := NewViewport(80, 10)
	v.ScrollTo(50, 100)
	require.Equal(t, 50, v.TopLine())

	// The document shrank underneath the viewport.
	v.Follow(3, 0, 5)
	assert.Equal(t, 0, v.TopLine())

	v.ScrollTo(99, 30)
	assert.Equal(t, 20, v.TopLine())
}

func TestFollowHorizontal(t *testing.T) {
	v := NewViewport(20, 5)

	v.Follow(0, 25, 1)
	assert.Equal(t, 7, v.LeftColumn())

	v.Follow(0, 10, 1)
	assert.Equal(t, 7, v.LeftColumn())

	v.Follow(0, 3, 1)
	assert.Equal(t, 3, v.LeftColumn())

	v.Follow(0, 0, 1)
	assert.Equal(t, 0, v.LeftColumn())
}

func TestHalfPage(t *testing.T) {
	assert.Equal(t, 11, NewViewport(80, 22).HalfPage())
	assert.Equal(t, 1, NewViewport(80, 1).HalfPage())
}

func TestViewRoundTrip(t *testing.T) {
	v := NewViewport(20, 5)
	v.Follow(30, 40, 100)

	row, col := v.ToView(30, 40)
	line, column := v.FromView(row, col)
	assert.Equal(t, 30, line)
	assert.Equal(t, 40, column)
}

// The cursor always lands inside the text region after Follow, no matter
// where the viewport was before or how the region was resized.
func TestFollowKeepsCursorVisible(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := NewViewport(
			rapid.IntRange(0, 40).Draw(t, "width"),
			rapid.IntRange(0, 30).Draw(t, "height"),
		)
		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if rapid.Bool().Draw(t, "resize") {
				v.Resize(rapid.IntRange(0, 40).Draw(t, "w"), rapid.IntRange(0, 30).Draw(t, "h"))
			}
			total := rapid.IntRange(1, 200).Draw(t, "total")
			line := rapid.IntRange(0, total-1).Draw(t, "line")
			column := rapid.IntRange(0, 300).Draw(t, "column")

			v.Follow(line, column, total)

			row, col := v.ToView(line, column)
			if row < 0 || row >= v.Height() || col < 0 || col >= v.Width() {
				t.Fatalf("cursor (%d,%d) at view (%d,%d) outside %dx%d", line, column, row, col, v.Width(), v.Height())
			}
			if v.TopLine() > max(0, total-v.Height()) {
				t.Fatalf("top line %d past end of %d lines", v.TopLine(), total)
			}
		}
	})
}
