package worker

import "time"

// ============================================================================
// Scheduling - Daily Reset Worker
// ============================================================================

const (
	// StandbyThreshold is how far from the reset the worker switches from standby to final approach
	StandbyThreshold = time.Hour

	// StandbyWakeBefore is how long before the reset a standby timer wakes up
	StandbyWakeBefore = 45 * time.Minute

	// ResetGrace is added after midnight so the refresh always lands on the new day
	ResetGrace = time.Second

	// EarlyFireTolerance is the largest early trigger that still counts as on time
	EarlyFireTolerance = 10 * time.Second
)

// ============================================================================
// Log Messages - Daily Reset Worker
// ============================================================================

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStarting      = "Daily bonus refresh starting"
	LogMsgDailyResetCompleted     = "Daily bonus refresh completed"
	LogMsgDailyResetFailed        = "Daily bonus refresh failed"
	LogMsgDailyResetStandby       = "Daily bonus refresh on standby"
	LogMsgDailyResetApproach      = "Daily bonus refresh scheduled"
	LogMsgDailyResetManualTrigger = "Daily bonus refresh manually triggered"
	LogMsgShuttingDown            = "Shutting down daily reset worker"
	LogMsgCancelledPending        = "Cancelled pending daily reset"
	LogMsgShutdownComplete        = "Daily reset worker shutdown complete"
	LogMsgShutdownTimeout         = "Daily reset worker shutdown timeout, a refresh may still be running"
)
