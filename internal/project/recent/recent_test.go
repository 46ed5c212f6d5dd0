package recent

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tick returns a clock that advances one second per call.
func tick() Clock {
	t := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// storeContract runs the behavior every Store must share.
func storeContract(t *testing.T, s Store) {
	t.Helper()

	assert.Empty(t, s.List())

	require.NoError(t, s.Add("/a.txt"))
	require.NoError(t, s.Add("/b.txt"))
	require.NoError(t, s.Add("/c.txt"))
	assert.Equal(t, []string{"/c.txt", "/b.txt", "/a.txt"}, Paths(s.List(), 0))

	// Re-adding moves to the front without duplicating.
	require.NoError(t, s.Add("/a.txt"))
	assert.Equal(t, []string{"/a.txt", "/c.txt", "/b.txt"}, Paths(s.List(), 0))

	require.NoError(t, s.Remove(1))
	assert.Equal(t, []string{"/a.txt", "/b.txt"}, Paths(s.List(), 0))

	// Out of range is a no-op.
	require.NoError(t, s.Remove(5))
	require.NoError(t, s.Remove(-1))
	assert.Len(t, s.List(), 2)

	entries := s.List()
	assert.True(t, entries[0].LastOpened.After(entries[1].LastOpened))

	require.NoError(t, s.Clear())
	assert.Empty(t, s.List())
	require.NoError(t, s.Close())
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore().WithClock(tick()))
}

func TestJSONStore(t *testing.T) {
	storeContract(t, NewJSONStore(afero.NewMemMapFs(), "/home/u/.linedit_history.json").WithClock(tick()))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	storeContract(t, s.WithClock(tick()))
}

func TestSQLiteStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Add("/x.py"))
	require.NoError(t, s.Close())

	s, err = OpenSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, []string{"/x.py"}, Paths(s.List(), 0))
}

func TestAddMakesPathAbsolute(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Add("rel/file.txt"))

	want, err := filepath.Abs("rel/file.txt")
	require.NoError(t, err)
	assert.Equal(t, want, s.List()[0].Path)
}

func TestJSONStoreMissingAndCorrupt(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewJSONStore(fs, "/h.json")
	assert.Empty(t, s.List())

	require.NoError(t, afero.WriteFile(fs, "/h.json", []byte("{not json"), 0o644))
	assert.Empty(t, s.List())

	require.NoError(t, afero.WriteFile(fs, "/h.json", []byte(`{"path": "/a"}`), 0o644))
	assert.Empty(t, s.List())

	// A corrupt file is replaced on the next write.
	require.NoError(t, s.Add("/new.txt"))
	assert.Equal(t, []string{"/new.txt"}, Paths(s.List(), 0))
}

func TestJSONStoreLegacyFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/h.json", []byte(`["/one.txt", "/two.txt", "/one.txt"]`), 0o644))

	s := NewJSONStore(fs, "/h.json").WithClock(tick())
	entries := s.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "/one.txt", entries[0].Path)
	assert.True(t, entries[0].LastOpened.IsZero())

	require.NoError(t, s.Add("/two.txt"))
	data, err := afero.ReadFile(fs, "/h.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"last_opened"`)
	assert.Equal(t, []string{"/two.txt", "/one.txt"}, Paths(s.List(), 0))
}

func TestJSONStoreLenientEntries(t *testing.T) {
	fs := afero.NewMemMapFs()
	body := `[
  {"path": "/py.txt", "last_opened": "2024-01-02T03:04:05.123456"},
  {"path": "/num.txt", "last_opened": 12},
  {"path": ""},
  42,
  "/plain.txt"
]`
	require.NoError(t, afero.WriteFile(fs, "/h.json", []byte(body), 0o644))

	entries := NewJSONStore(fs, "/h.json").List()
	require.Len(t, entries, 3)
	assert.Equal(t, []string{"/py.txt", "/num.txt", "/plain.txt"}, Paths(entries, 0))
	assert.Equal(t, 2024, entries[0].LastOpened.Year())
	assert.Equal(t, 123456000, entries[0].LastOpened.Nanosecond())
	assert.True(t, entries[1].LastOpened.IsZero())
}

func TestPathsLimit(t *testing.T) {
	entries := []Entry{{Path: "/a"}, {Path: "/b"}, {Path: "/c"}}
	assert.Equal(t, []string{"/a", "/b"}, Paths(entries, 2))
	assert.Equal(t, []string{"/a", "/b", "/c"}, Paths(entries, 10))
	assert.Empty(t, Paths(nil, 5))
}
