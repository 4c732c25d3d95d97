package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// ConnectTimeout bounds pool creation and the first ping
	ConnectTimeout = 10 * time.Second

	// ApplicationName tags every session in pg_stat_activity
	ApplicationName = "gilded-rose"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToLoadMigrations      = "failed to load migrations"
	ErrMsgFailedToApplyMigrations     = "failed to apply migrations"
	ErrMsgFailedToReadSchemaVersion   = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
)
