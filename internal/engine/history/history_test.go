package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/linedit/internal/engine/buffer"
)

func snap(text string) Snapshot {
	return Snapshot{Lines: []string{text}}
}

func TestEmptyHistory(t *testing.T) {
	h := New(10)
	assert.Equal(t, -1, h.Index())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	_, ok := h.Undo()
	assert.False(t, ok)
	_, ok = h.Redo()
	assert.False(t, ok)
	_, ok = h.Current()
	assert.False(t, ok)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	h := New(10)
	h.Push(snap("S0"))
	h.Push(snap("S1"))
	h.Push(snap("S2"))

	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snap("S1"), s)
	s, ok = h.Undo()
	require.True(t, ok)
	assert.Equal(t, snap("S0"), s)

	_, ok = h.Undo()
	assert.False(t, ok, "undo stops at the first snapshot")

	s, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, snap("S1"), s)
	s, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, snap("S2"), s)

	_, ok = h.Redo()
	assert.False(t, ok)
}

func TestPushDiscardsRedoBranch(t *testing.T) {
	h := New(10)
	h.Push(snap("S0"))
	h.Push(snap("S1"))
	h.Push(snap("S2"))

	_, ok := h.Undo()
	require.True(t, ok)
	h.Push(snap("S3"))

	assert.False(t, h.CanRedo())
	_, ok = h.Redo()
	assert.False(t, ok)
	assert.Equal(t, 3, h.Len())

	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snap("S1"), s)
	s, ok = h.Redo()
	require.True(t, ok)
	assert.Equal(t, snap("S3"), s, "the S2 branch is gone")
}

func TestLimitEvictsOldest(t *testing.T) {
	h := New(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		h.Push(snap(s))
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Index())

	cur, ok := h.Current()
	require.True(t, ok)
	assert.Equal(t, snap("e"), cur)

	h.Undo()
	s, ok := h.Undo()
	require.True(t, ok)
	assert.Equal(t, snap("c"), s)
	assert.False(t, h.CanUndo())
}

func TestDefaultLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, New(0).Limit())
	assert.Equal(t, DefaultLimit, New(-4).Limit())
}

func TestSnapshotsAreIsolated(t *testing.T) {
	h := New(10)
	lines := []string{"orig"}
	h.Push(Snapshot{Lines: lines})
	lines[0] = "mutated"

	cur, _ := h.Current()
	assert.Equal(t, "orig", cur.Lines[0])

	cur.Lines[0] = "again"
	again, _ := h.Current()
	assert.Equal(t, "orig", again.Lines[0])
}

func TestResetAndClear(t *testing.T) {
	h := New(10)
	h.Push(snap("a"))
	h.Push(snap("b"))

	h.Reset(snap("fresh"))
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, 0, h.Index())
	assert.False(t, h.CanUndo())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, -1, h.Index())
}

func TestCaptureAndRestore(t *testing.T) {
	buf := buffer.New("ab\ncd")
	buf.SetCursor(buffer.Position{Line: 1, Col: 1})
	s := Capture(buf)

	buf.InsertChar("x")
	buf.SplitLine()

	s.RestoreTo(buf)
	assert.Equal(t, []string{"ab", "cd"}, buf.Lines())
	assert.Equal(t, buffer.Position{Line: 1, Col: 1}, buf.Cursor())
}

func TestSnapshotEqual(t *testing.T) {
	a := Snapshot{Lines: []string{"x"}, Cursor: buffer.Position{Col: 1}}
	assert.True(t, a.Equal(a.Clone()))
	assert.False(t, a.Equal(Snapshot{Lines: []string{"x"}}))
	assert.False(t, a.Equal(Snapshot{Lines: []string{"y"}, Cursor: buffer.Position{Col: 1}}))
}
