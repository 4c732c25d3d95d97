package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Tick errors
	ErrMsgInvalidDays    = "days out of range"
	ErrMsgTickInProgress = "a day advance is already in progress"
	ErrMsgShuttingDown   = "service is shutting down"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"
	ErrMsgTxClosed          = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInvalidDays    = errors.New(ErrMsgInvalidDays)
	ErrTickInProgress = errors.New(ErrMsgTickInProgress)
	ErrShuttingDown   = errors.New(ErrMsgShuttingDown)

	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
