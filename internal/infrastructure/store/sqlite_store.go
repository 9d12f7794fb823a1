// Package store provides the blob-store adapters: SQLite by default with
// a plain-file fallback when the database cannot be opened.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"nous/internal/domain"
	"nous/internal/pkg/filesystem"
	"nous/internal/ports"
)

// SQLiteStore persists each collection as one row in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	mu       sync.Mutex
	fallback *FileStore
}

// NewSQLiteStore creates (or opens) the database at path, defaulting to
// ~/.nous/state.db. When the database cannot be opened the store degrades
// to the file backend.
func NewSQLiteStore(path string) *SQLiteStore {
	if path == "" {
		path = filepath.Join(filesystem.UserHomeDir(), ".nous", "state.db")
	}
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path, fallback: NewFileStore("")}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path, fallback: NewFileStore("")}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB,
		updated_at TEXT
	);`)
	return err
}

// Load implements ports.BlobStore. Missing or unreadable rows report
// ok=false rather than an error.
func (s *SQLiteStore) Load(collection string) ([]byte, bool) {
	if s.db == nil {
		return s.fallback.Load(collection)
	}
	var payload []byte
	row := s.db.QueryRow(`SELECT payload FROM collections WHERE name = ?`, collection)
	if err := row.Scan(&payload); err != nil {
		return nil, false
	}
	return payload, true
}

// Save implements ports.BlobStore.
func (s *SQLiteStore) Save(collection string, payload []byte) error {
	if s.db == nil {
		return s.fallback.Save(collection, payload)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		collection, payload, time.Now().Format(domain.TimestampFormat))
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

var _ ports.BlobStore = (*SQLiteStore)(nil)
