package domain

import "time"

// Config mirrors ~/.nous/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Preferences         Preferences     `yaml:"preferences"`
	Brain               BrainSettings   `yaml:"brain"`
	Storage             StorageSettings `yaml:"storage"`
}

// Preferences captures user level toggles.
type Preferences struct {
	Verbose      bool `yaml:"verbose"`
	HistoryLimit int  `yaml:"history_limit"`
}

// BrainSettings controls the periodic plan synthesizer.
type BrainSettings struct {
	Enabled         *bool `yaml:"enabled"`
	IntervalMinutes int   `yaml:"interval_minutes"`
}

// IsEnabled defaults to true when the field is absent from the config file.
func (b BrainSettings) IsEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// Interval returns the configured period, falling back to the default.
func (b BrainSettings) Interval() time.Duration {
	if b.IntervalMinutes <= 0 {
		return DefaultBrainInterval
	}
	return time.Duration(b.IntervalMinutes) * time.Minute
}

// StorageSettings selects the persistence backend.
type StorageSettings struct {
	Backend string `yaml:"backend"` // "sqlite" or "file"
	Path    string `yaml:"path"`
}

// Storage backend names.
const (
	StorageBackendSQLite = "sqlite"
	StorageBackendFile   = "file"
)
