package inventory

import "time"

// Tick sources recorded on events and logs
const (
	SourceAPI       = "api"
	SourceScheduler = "scheduler"
	SourceUnknown   = "unknown"
)

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Second

	// CacheSchemaVersion is bumped when the cached entry shape changes
	CacheSchemaVersion = "1.0"
)

// Suggestion tuning
const (
	MaxSuggestions        = 3
	MinSuggestionDistance = 2
	// SuggestionLengthDivisor scales the allowed edit distance with the name length
	SuggestionLengthDivisor = 3
)

// History limits
const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 365
)

// Log messages
const (
	LogMsgDayAdvanced     = "Stock advanced one day"
	LogMsgTickFailed      = "Failed to advance stock"
	LogMsgTickRejected    = "Day advance rejected, another is in progress"
	LogMsgPublishFailed   = "Failed to publish day advanced event"
	LogMsgShuttingDown    = "Inventory service shutting down, waiting for in-flight ticks..."
	LogMsgCacheHit        = "Stock cache hit"
	LogMsgGaugesRefreshed = "Stock gauges refreshed"
)
