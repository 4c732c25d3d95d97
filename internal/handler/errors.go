package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter validation error messages
	ErrMsgInvalidLimit    = "Invalid limit parameter"
	ErrMsgInvalidItemName = "Invalid item name"

	// Stock operation error messages
	ErrMsgListItemsFailed   = "Failed to list items"
	ErrMsgGetItemFailed     = "Failed to get item"
	ErrMsgListTicksFailed   = "Failed to list tick history"
	ErrMsgAdvanceDaysFailed = "Failed to advance stock"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgInvalidDaysError    = "days must be between 1 and 365"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgTickInProgressError = "Another day advance is already running. Try again shortly."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDBFailed       = "database connection failed"
)

// Query parameter names
const (
	QueryParamLimit = "limit"
	URLParamName    = "name"
)
