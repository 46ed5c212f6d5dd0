package history

// DefaultLimit is the number of snapshots retained when no limit is given.
const DefaultLimit = 200

// History is a bounded, linear undo/redo stack of snapshots.
// It is used from the single editor loop and is not safe for concurrent use.
type History struct {
	entries []Snapshot
	index   int
	limit   int
}

// New creates an empty history retaining at most limit snapshots.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{
		index: -1,
		limit: limit,
	}
}

// Push records a snapshot at the current position. Snapshots after the
// current index are discarded first. When the limit is exceeded the oldest
// snapshot is dropped.
func (h *History) Push(s Snapshot) {
	if h.index < len(h.entries)-1 {
		h.entries = h.entries[:h.index+1]
	}
	h.entries = append(h.entries, s.Clone())
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	} else {
		h.index++
	}
}

// Undo steps back one snapshot and returns it.
// It returns false when already at the first snapshot.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.index--
	return h.entries[h.index].Clone(), true
}

// Redo steps forward one snapshot and returns it.
// It returns false when already at the last snapshot.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.index++
	return h.entries[h.index].Clone(), true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return h.index < len(h.entries)-1
}

// Current returns the snapshot at the current index.
func (h *History) Current() (Snapshot, bool) {
	if h.index < 0 {
		return Snapshot{}, false
	}
	return h.entries[h.index].Clone(), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the current index, or -1 when empty.
func (h *History) Index() int {
	return h.index
}

// Limit returns the maximum number of retained snapshots.
func (h *History) Limit() int {
	return h.limit
}

// Reset discards all snapshots and starts over from s.
func (h *History) Reset(s Snapshot) {
	h.entries = []Snapshot{s.Clone()}
	h.index = 0
}

// Clear removes all snapshots.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}
