// Package recent stores the list of recently opened files.
//
// Entries are kept most recent first and are unique by absolute path.
// Stores never fail a read: missing or corrupt storage reads as an empty
// list. Writes report their errors so callers can log them.
package recent

import (
	"path/filepath"
	"time"
)

// Entry is one recently opened file.
type Entry struct {
	Path       string    `json:"path"`
	LastOpened time.Time `json:"last_opened"`
}

// Store is a persisted recent-files list.
type Store interface {
	// List returns all entries, most recent first.
	List() []Entry

	// Add records path as opened now, moving it to the front.
	Add(path string) error

	// Remove deletes the entry at index. Out-of-range indexes are ignored.
	Remove(index int) error

	// Clear deletes every entry.
	Clear() error

	// Close releases the store.
	Close() error
}

// Clock returns the current time.
type Clock func() time.Time

// absPath resolves path, keeping it unchanged when that fails.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// promote puts path at the front of entries with timestamp now.
func promote(entries []Entry, path string, now time.Time) []Entry {
	out := make([]Entry, 0, len(entries)+1)
	out = append(out, Entry{Path: path, LastOpened: now})
	for _, e := range entries {
		if e.Path != path {
			out = append(out, e)
		}
	}
	return out
}

// Paths returns the paths of entries, at most limit of them when limit > 0.
func Paths(entries []Entry, limit int) []string {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.Path
	}
	return paths
}
