package recent

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

const schema = `
CREATE TABLE IF NOT EXISTS recent_files (
	path TEXT PRIMARY KEY,
	last_opened INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS recent_files_last_opened ON recent_files(last_opened DESC);
`

// SQLiteStore keeps entries in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	now  Clock
}

// OpenSQLiteStore opens or creates the database at path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path, now: time.Now}, nil
}

// WithClock sets the clock used for timestamps.
func (s *SQLiteStore) WithClock(now Clock) *SQLiteStore {
	s.now = now
	return s
}

// Path returns the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

// List implements Store.
func (s *SQLiteStore) List() []Entry {
	rows, err := s.db.Query(`SELECT path, last_opened FROM recent_files ORDER BY last_opened DESC, rowid DESC`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var path string
		var nanos int64
		if err := rows.Scan(&path, &nanos); err != nil {
			return nil
		}
		entries = append(entries, Entry{Path: path, LastOpened: time.Unix(0, nanos)})
	}
	if rows.Err() != nil {
		return nil
	}
	return entries
}

// Add implements Store.
func (s *SQLiteStore) Add(path string) error {
	_, err := s.db.Exec(
		`INSERT INTO recent_files (path, last_opened) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET last_opened = excluded.last_opened`,
		absPath(path), s.now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", path, err)
	}
	return nil
}

// Remove implements Store.
func (s *SQLiteStore) Remove(index int) error {
	entries := s.List()
	if index < 0 || index >= len(entries) {
		return nil
	}
	if _, err := s.db.Exec(`DELETE FROM recent_files WHERE path = ?`, entries[index].Path); err != nil {
		return fmt.Errorf("removing history entry: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM recent_files`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
