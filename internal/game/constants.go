package game

// Error messages
const (
	ErrMsgLoadFailed = "failed to load session"
	ErrFmtStaleOffer = "spin %d has no open offer, current offer belongs to spin %d"
)

// Log messages
const (
	LogMsgSessionLoaded       = "Session loaded"
	LogMsgSpinSettled         = "Spin settled"
	LogMsgSpinRejected        = "Spin rejected"
	LogMsgDoubleResolved      = "Double-or-nothing resolved"
	LogMsgDoubleSkipped       = "Double-or-nothing offer kept"
	LogMsgOfferDiscarded      = "Unresolved double-or-nothing offer discarded by new spin"
	LogMsgBonusClaimed        = "Daily bonus claimed"
	LogMsgBonusRejected       = "Daily bonus rejected"
	LogMsgBonusReopened       = "Daily bonus available again"
	LogMsgSaveFailed          = "Failed to persist game state"
	LogMsgPublishFailed       = "Failed to publish game event"
	LogMsgSessionReset        = "Session reset to defaults"
	LogMsgAchievementUnlocked = "Achievement unlocked"
)
