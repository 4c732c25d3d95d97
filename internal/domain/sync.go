package domain

import "time"

// SyncMetadata is the fingerprint of the last catalog file seeded into stock.
// A matching FileHash means the sync can be skipped.
type SyncMetadata struct {
	ConfigName   string    `json:"config_name" db:"config_name"`
	FileHash     string    `json:"file_hash" db:"file_hash"`
	FileModTime  time.Time `json:"file_mod_time" db:"file_mod_time"`
	LastSyncTime time.Time `json:"last_synced_at" db:"last_synced_at"`
}
