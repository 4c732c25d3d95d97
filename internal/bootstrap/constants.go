package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of session logs kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Gilded Rose stock service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	LogMsgEventAuditRegistered           = "Event audit logger registered"
	LogMsgStockEvent                     = "Stock event"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
)

// =============================================================================
// Catalog Sync
// =============================================================================

const (
	LogMsgSyncingCatalog   = "Syncing stock from catalog..."
	LogMsgCatalogSynced    = "Catalog synced"
	LogMsgCatalogUnchanged = "Catalog unchanged, sync skipped"

	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgInvalidCatalog    = "invalid catalog"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDailyTickWorkerFailed      = "Daily tick worker shutdown failed"

	// LogMsgServiceShutdownFailed is appended to the service name
	LogMsgServiceShutdownFailed = " service shutdown failed"

	ServiceNameInventory = "inventory"
)
