package wallet

// Error messages
const (
	ErrMsgLoadStateFailed  = "failed to load game state"
	ErrMsgDecodeFailed     = "failed to decode game state"
	ErrMsgEncodeFailed     = "failed to encode game state"
	ErrMsgSaveStateFailed  = "failed to save game state"
	ErrMsgLoadClaimFailed  = "failed to load daily bonus date"
	ErrMsgResetStateFailed = "failed to reset game state"
)

// Log messages
const (
	LogMsgNewPlayer           = "No saved game found, starting a new wallet"
	LogMsgAchievementsDeduped = "Collapsed duplicate achievements in saved game"
	LogMsgBonusFlagRederived  = "Daily bonus flag re-derived from claim date"
	LogMsgWalletReset         = "Saved game wiped"
)
