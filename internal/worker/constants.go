package worker

import "time"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
)

// ============================================================================
// Log Messages - Daily Tick Worker
// ============================================================================

// Log messages for daily tick worker operations
const (
	LogMsgDailyTickStandby   = "Daily tick standby, next check scheduled"
	LogMsgDailyTickApproach  = "Daily tick scheduled"
	LogMsgDailyTickStarting  = "Daily tick starting"
	LogMsgDailyTickCompleted = "Daily tick completed"
	LogMsgDailyTickFailed    = "Daily tick failed"
)

// ============================================================================
// Scheduling
// ============================================================================

// Two-stage timer tuning for the daily tick
const (
	// StandbyThreshold is how far out the worker switches from standby to approach
	StandbyThreshold = 1 * time.Hour
	// ApproachLead is how early the standby timer wakes before the tick
	ApproachLead = 45 * time.Minute
	// JitterTolerance is how early a timer may fire before it is rescheduled
	JitterTolerance = 10 * time.Second
	// LateWindow is the remaining-time floor beyond which a firing counts as on time
	LateWindow = 23 * time.Hour

	// DefaultJobTimeout bounds a single pooled job
	DefaultJobTimeout = 30 * time.Second
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
