package catalog

// Catalog configuration file names
const (
	// SchemaPath is the JSON schema every catalog file must satisfy
	SchemaPath = "configs/schemas/catalog.schema.json"
)

// File operation error messages
const (
	ErrMsgReadConfigFileFailed = "failed to read catalog file: %w"
	ErrMsgParseConfigFailed    = "failed to parse catalog: %w"
	ErrMsgStatConfigFileFailed = "failed to stat catalog file: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgConfigNil      = "config is nil"
	ErrMsgNoItemsDefined = "no items defined"
)

// Database operation error messages
const (
	ErrMsgCheckFileChangeFailed  = "failed to check if catalog changed: %w"
	ErrMsgGetExistingItemsFailed = "failed to get existing stock: %w"
	ErrMsgInsertItemFailed       = "failed to insert item '%s': %w"
)

// Sync operation log messages
const (
	LogMsgConfigUnchanged      = "Catalog file unchanged, skipping sync"
	LogMsgSyncCompleted        = "Catalog sync completed"
	LogMsgInsertedItem         = "Stocked item"
	LogMsgUpdateMetadataFailed = "Failed to update sync metadata"
)

// Format strings used with fmt.Errorf for detailed error messages
const (
	ErrFmtItemAtIndexEmpty  = "%w: item at index %d has empty name"
	ErrFmtQualityOutOfRange = "%w: item '%s' has quality %d outside [%d, %d]"
	ErrFmtLegendaryQuality  = "%w: legendary item '%s' must have quality %d, got %d"
)
