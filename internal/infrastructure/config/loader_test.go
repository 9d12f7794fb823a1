package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"nous/internal/domain"
)

func TestLoadWritesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ConfigFormatVersion != "1" {
		t.Fatalf("version = %q, want 1", cfg.ConfigFormatVersion)
	}
	if cfg.Brain.Interval() != domain.DefaultBrainInterval {
		t.Fatalf("interval = %v, want default", cfg.Brain.Interval())
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
}

func TestLoadHydratesPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("preferences:\n  verbose: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Preferences.Verbose {
		t.Fatal("verbose flag lost")
	}
	if cfg.Preferences.HistoryLimit != domain.DefaultHistoryLimit {
		t.Fatalf("history limit = %d, want default", cfg.Preferences.HistoryLimit)
	}
	if cfg.Storage.Backend != domain.StorageBackendSQLite {
		t.Fatalf("backend = %q, want sqlite default", cfg.Storage.Backend)
	}
	if !cfg.Brain.IsEnabled() {
		t.Fatal("brain should default to enabled")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("::: not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected error for malformed config")
	}
}
