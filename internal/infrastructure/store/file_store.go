package store

import (
	"os"
	"path/filepath"
	"sync"

	"nous/internal/domain"
	"nous/internal/pkg/filesystem"
	"nous/internal/ports"
)

// FileStore keeps one JSON file per collection under a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir, defaulting to ~/.nous/state.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join(filesystem.UserHomeDir(), ".nous", "state")
	}
	return &FileStore{dir: dir}
}

// Load implements ports.BlobStore.
func (f *FileStore) Load(collection string) ([]byte, bool) {
	payload, err := os.ReadFile(f.pathFor(collection))
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Save implements ports.BlobStore.
func (f *FileStore) Save(collection string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.MkdirAll(f.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(f.pathFor(collection), payload, 0o644)
}

// Dir returns the backing directory.
func (f *FileStore) Dir() string {
	return f.dir
}

func (f *FileStore) pathFor(collection string) string {
	return filepath.Join(f.dir, collection+".json")
}

var _ ports.BlobStore = (*FileStore)(nil)
