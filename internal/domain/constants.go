package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// Analysis constants
const (
	// TopMatches is how many ranked history entries and snippets are reported.
	TopMatches = 5
	// SpectrumMax is the upper bound of the integer similarity scale.
	SpectrumMax = 1000
)

// Brain constants
const (
	// BrainRunCapacity bounds the retained run history, oldest evicted first.
	BrainRunCapacity = 30
	// DefaultBrainInterval is the period between scheduled brain runs.
	DefaultBrainInterval = 9 * time.Minute
)

// Limit constants
const (
	// DefaultHistoryLimit is the default number of history records to display
	DefaultHistoryLimit = 20
	// DefaultMaxCacheEntries is the maximum number of cache entries
	DefaultMaxCacheEntries = 100
	// DefaultCacheTTL is how long cached interpretations stay valid
	DefaultCacheTTL = time.Hour
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
)
