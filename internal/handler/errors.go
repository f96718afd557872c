package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidRequestFormat  = "Invalid request format"

	// Game operation error messages
	ErrMsgGetStateFailed       = "Failed to load game state"
	ErrMsgSpinFailed           = "Failed to spin"
	ErrMsgDoubleFailed         = "Failed to resolve double or nothing"
	ErrMsgSkipDoubleFailed     = "Failed to skip double or nothing"
	ErrMsgClaimBonusFailed     = "Failed to claim daily bonus"
	ErrMsgGetStatsFailed       = "Failed to load stats"
	ErrMsgResetFailed          = "Failed to reset game"
	ErrMsgRefreshDailyFailed   = "Failed to refresh daily bonus"
	ErrMsgReadinessCheckFailed = "Readiness check failed"
	ErrMsgStoreUnavailable     = "store connection failed"
)

// Log messages shared by the handlers
const (
	LogMsgDecodeFailed       = "Failed to decode %s request"
	LogMsgRequestDecoded     = "%s request decoded"
	LogMsgServiceError       = "Service error"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgResetRequested     = "Game reset requested"
	LogMsgResetCompleted     = "Game reset completed"
	LogMsgDailyRefreshManual = "Manual daily bonus refresh triggered"
)

// Action names used in logs and validation responses
const (
	ActionNameDouble     = "Double or nothing"
	ActionNameSkipDouble = "Skip double or nothing"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
