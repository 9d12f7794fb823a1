// Package config loads the YAML configuration file.
package config

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"nous/internal/domain"
	"nous/internal/pkg/filesystem"
	"nous/internal/ports"
)

// FileLoader loads YAML configuration from ~/.nous/config.yaml (overridable via NOUS_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// defaults; a malformed file is an error surfaced to the caller.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.resolvePath()
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := defaultConfig()
			if err := writeDefault(path, cfg); err != nil {
				return domain.Config{}, err
			}
			return cfg, nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}

	return hydrateDefaults(cfg), nil
}

// Path reports where the configuration is read from.
func (l *FileLoader) Path() string {
	return l.resolvePath()
}

func (l *FileLoader) resolvePath() string {
	if l.overridePath != "" {
		return l.overridePath
	}
	if custom := os.Getenv("NOUS_CONFIG"); custom != "" {
		return expandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".nous", "config.yaml")
}

func writeDefault(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, domain.SecureFilePermissions)
}

func defaultConfig() domain.Config {
	enabled := true
	return domain.Config{
		ConfigFormatVersion: "1",
		Preferences: domain.Preferences{
			Verbose:      false,
			HistoryLimit: domain.DefaultHistoryLimit,
		},
		Brain: domain.BrainSettings{
			Enabled:         &enabled,
			IntervalMinutes: 9,
		},
		Storage: domain.StorageSettings{
			Backend: domain.StorageBackendSQLite,
		},
	}
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.Preferences.HistoryLimit <= 0 {
		cfg.Preferences.HistoryLimit = domain.DefaultHistoryLimit
	}
	if cfg.Brain.IntervalMinutes <= 0 {
		cfg.Brain.IntervalMinutes = 9
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = domain.StorageBackendSQLite
	}
	return cfg
}

func expandPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(filesystem.UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
