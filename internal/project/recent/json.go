package recent

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// timeLayouts are accepted when reading last_opened. The first one is
// used for writing.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// JSONStore keeps entries in a JSON file.
//
// The file holds an array of {"path", "last_opened"} objects. An array of
// plain path strings is also accepted on read and rewritten as objects on
// the next change.
type JSONStore struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
	now  Clock
}

// NewJSONStore creates a store for the JSON file at path.
func NewJSONStore(fsys afero.Fs, path string) *JSONStore {
	return &JSONStore{fs: fsys, path: path, now: time.Now}
}

// WithClock sets the clock used for timestamps.
func (s *JSONStore) WithClock(now Clock) *JSONStore {
	s.now = now
	return s
}

// Path returns the file the store reads and writes.
func (s *JSONStore) Path() string {
	return s.path
}

// List implements Store.
func (s *JSONStore) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add implements Store.
func (s *JSONStore) Add(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(promote(s.load(), absPath(path), s.now()))
}

// Remove implements Store.
func (s *JSONStore) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.load()
	if index < 0 || index >= len(entries) {
		return nil
	}
	return s.save(append(entries[:index], entries[index+1:]...))
}

// Clear implements Store.
func (s *JSONStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

// Close implements Store.
func (s *JSONStore) Close() error {
	return nil
}

// load reads the file, returning nil on any failure.
func (s *JSONStore) load() []Entry {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil
	}
	entries, err := decodeEntries(data)
	if err != nil {
		return nil
	}
	return entries
}

func (s *JSONStore) save(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	records := make([]record, len(entries))
	for i, e := range entries {
		records[i] = record{Path: e.Path}
		if !e.LastOpened.IsZero() {
			records[i].LastOpened = e.LastOpened.Format(timeLayouts[0])
		}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// record is the on-disk form of an Entry.
type record struct {
	Path       string `json:"path"`
	LastOpened string `json:"last_opened,omitempty"`
}

// decodeEntries parses the file body. Elements may be objects or legacy
// path strings; elements of any other shape are skipped.
func decodeEntries(data []byte) ([]Entry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for _, item := range raw {
		var e Entry
		var path string
		if err := json.Unmarshal(item, &path); err == nil {
			e.Path = path
		} else {
			var r struct {
				Path       string          `json:"path"`
				LastOpened json.RawMessage `json:"last_opened"`
			}
			if err := json.Unmarshal(item, &r); err != nil {
				continue
			}
			e.Path = r.Path
			var ts string
			if json.Unmarshal(r.LastOpened, &ts) == nil {
				e.LastOpened = parseTime(ts)
			}
		}
		if e.Path == "" || seen[e.Path] {
			continue
		}
		seen[e.Path] = true
		entries = append(entries, e)
	}
	return entries, nil
}

// parseTime accepts the layouts in timeLayouts, returning the zero time
// for anything else.
func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
