package config

import "time"

const (
	// Configuration file paths
	ConfigPathCatalog       = "configs/items/catalog.json"
	ConfigPathCatalogSchema = "configs/schemas/catalog.schema.json"
)

// Defaults applied when the environment does not set a value
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultEnvironment = "dev"
	DefaultServiceName = "gilded-rose"
	DefaultVersion     = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultDailyTickHour      = 0
	DefaultStockGaugeInterval = 30 * time.Second

	DefaultCacheSize = 256
	DefaultCacheTTL  = 10 * time.Second

	DefaultMaxBodyBytes = 1 << 20
)
