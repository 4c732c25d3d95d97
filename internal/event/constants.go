package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeySource = "source"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5

	// DeadLetterFileName is written under the log directory
	DeadLetterFileName = "events_deadletter.jsonl"
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log message constants
const (
	LogMsgEventPublishFailed   = "Event publish failed, queuing for retry"
	LogMsgEventRetryExhausted  = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed     = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventDroppedShutdown = "Event dropped during shutdown"
	LogMsgDeadLetterFailed     = "Failed to write to dead letter"
	LogMsgShutdownTimeout      = "Resilient publisher shutdown timed out"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Implements exponential backoff: 2s, 4s, 8s, 16s, 32s
// Formula: initialDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
