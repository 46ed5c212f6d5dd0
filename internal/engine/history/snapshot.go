package history

import "github.com/dshills/linedit/internal/engine/buffer"

// Snapshot is a full copy of the document lines and the cursor.
type Snapshot struct {
	Lines  []string
	Cursor buffer.Position
}

// Capture copies the current state of buf.
func Capture(buf *buffer.Buffer) Snapshot {
	return Snapshot{
		Lines:  buf.Lines(),
		Cursor: buf.Cursor(),
	}
}

// RestoreTo replaces the document and cursor of buf with the snapshot.
func (s Snapshot) RestoreTo(buf *buffer.Buffer) {
	buf.Replace(s.Lines, s.Cursor)
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return Snapshot{Lines: lines, Cursor: s.Cursor}
}

// Equal reports whether two snapshots hold the same lines and cursor.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Cursor != other.Cursor || len(s.Lines) != len(other.Lines) {
		return false
	}
	for i := range s.Lines {
		if s.Lines[i] != other.Lines[i] {
			return false
		}
	}
	return true
}
