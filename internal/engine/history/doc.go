// Package history provides undo/redo for the editor engine.
//
// History is a linear stack of full-document snapshots with a current index.
// Undo and redo move the index; pushing while behind the end discards every
// snapshot after the index, so there is never a redo branch to return to.
// The stack is bounded and evicts the oldest snapshot when full.
//
//	h := history.New(200)
//	h.Push(history.Capture(buf))
//	// ... edit ...
//	h.Push(history.Capture(buf))
//
//	if snap, ok := h.Undo(); ok {
//		snap.RestoreTo(buf)
//	}
package history
