package logger

// Accepted LOG_LEVEL values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Fallbacks when the service identity is not configured
const (
	DefaultServiceName = "gilded-rose"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment names that change logging behaviour
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
