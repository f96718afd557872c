package bonus

// ActionLabel is used in cooldown messages
const ActionLabel = "claim the daily bonus"

// User-facing messages
const (
	MsgFmtClaimed = "You received %d coins! Come back tomorrow for another bonus."
)
