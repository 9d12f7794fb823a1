// Package cache stores dry-run interpretation results as JSON blobs.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"nous/internal/domain"
	"nous/internal/pkg/filesystem"
	"nous/internal/ports"
)

type entry struct {
	Key            string                `json:"key"`
	Interpretation domain.Interpretation `json:"interpretation"`
	CreatedAt      time.Time             `json:"created_at"`
}

// FileCache stores interpretation results addressed by hash key.
type FileCache struct {
	dir        string
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
}

// NewFileCache returns a cache rooted under ~/.nous/cache/interpretations.
func NewFileCache() *FileCache {
	return &FileCache{
		dir:        filepath.Join(filesystem.UserHomeDir(), ".nous", "cache", "interpretations"),
		maxEntries: domain.DefaultMaxCacheEntries,
		ttl:        domain.DefaultCacheTTL,
	}
}

// Get retrieves a cached interpretation.
func (c *FileCache) Get(key string) (domain.Interpretation, bool) {
	if key == "" {
		return domain.Interpretation{}, false
	}
	data, err := os.ReadFile(c.pathFor(key))
	if err != nil {
		return domain.Interpretation{}, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return domain.Interpretation{}, false
	}
	if c.ttl > 0 && time.Since(e.CreatedAt) > c.ttl {
		_ = os.Remove(c.pathFor(key))
		return domain.Interpretation{}, false
	}
	return e.Interpretation, true
}

// Set stores an interpretation.
func (c *FileCache) Set(key string, value domain.Interpretation) error {
	if key == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := os.MkdirAll(c.dir, domain.DirectoryPermissions); err != nil {
		return err
	}
	data, err := json.Marshal(entry{Key: key, Interpretation: value, CreatedAt: time.Now()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.pathFor(key), data, 0o644); err != nil {
		return err
	}
	return c.evictIfNeeded()
}

// Dir exposes the cache directory path.
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) pathFor(key string) string {
	return filepath.Join(c.dir, key+".json")
}

// evictIfNeeded drops the oldest files beyond maxEntries.
func (c *FileCache) evictIfNeeded() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}
	if len(entries) <= c.maxEntries {
		return nil
	}
	type aged struct {
		name string
		mod  time.Time
	}
	files := make([]aged, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, aged{name: e.Name(), mod: info.ModTime()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].mod.Before(files[j].mod) })
	for _, f := range files[:len(files)-c.maxEntries] {
		_ = os.Remove(filepath.Join(c.dir, f.name))
	}
	return nil
}

var _ ports.InterpretationCache = (*FileCache)(nil)
