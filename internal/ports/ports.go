// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and
// external adapters (infrastructure). The core owns all analysis logic;
// persistence, configuration and logging are injected through these
// interfaces so the application never touches a concrete backend directly.
package ports

import (
	"context"

	"nous/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.nous/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// BlobStore round-trips each persisted collection as an opaque blob.
//
// Load never fails from the caller's point of view: a missing or unreadable
// collection simply reports ok=false and the caller falls back to its
// compiled-in default. Save is best-effort; callers log and ignore errors.
type BlobStore interface {
	Load(collection string) (payload []byte, ok bool)
	Save(collection string, payload []byte) error
}

// InterpretationCache stores dry-run interpretation results keyed by
// input hash and state generation.
type InterpretationCache interface {
	Get(key string) (domain.Interpretation, bool)
	Set(key string, value domain.Interpretation) error
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
