package recent

import (
	"sync"
	"time"
)

// MemoryStore keeps entries in memory.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
	now     Clock
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// WithClock sets the clock used for timestamps.
func (s *MemoryStore) WithClock(now Clock) *MemoryStore {
	s.now = now
	return s
}

// List implements Store.
func (s *MemoryStore) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Add implements Store.
func (s *MemoryStore) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = promote(s.entries, absPath(path), s.now())
	return nil
}

// Remove implements Store.
func (s *MemoryStore) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return nil
	}
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	return nil
}

// Clear implements Store.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	return nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
