package domain

// Event type constants published on the event bus.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeSpinSettled is published after every settled spin
	EventTypeSpinSettled = "slots.spin.settled"

	// EventTypeDoubleResolved is published when a double-or-nothing guess is settled
	EventTypeDoubleResolved = "gamble.double.resolved"

	// EventTypeDoubleSkipped is published when the player keeps their winnings
	EventTypeDoubleSkipped = "gamble.double.skipped"

	// EventTypeDailyBonusClaimed is published after the daily bonus is credited
	EventTypeDailyBonusClaimed = "bonus.daily.claimed"

	// EventTypeDailyBonusReset is published when a new calendar day re-opens the bonus
	EventTypeDailyBonusReset = "bonus.daily.reset"

	// EventTypeAchievementUnlocked is published once per newly unlocked achievement
	EventTypeAchievementUnlocked = "achievement.unlocked"
)

// SpinSettledPayload is the event payload for slots.spin.settled events
type SpinSettledPayload struct {
	Symbols     []Symbol `json:"symbols"`
	BasePayout  int      `json:"base_payout"`
	Multiplier  int      `json:"multiplier"`
	FinalPayout int      `json:"final_payout"`
	Cost        int      `json:"cost"`
	Coins       int      `json:"coins"`
	WinStreak   int      `json:"win_streak"`
	IsWin       bool     `json:"is_win"`
}

// DoubleResolvedPayload is the event payload for gamble.double.* events
type DoubleResolvedPayload struct {
	Stake int       `json:"stake"`
	Guess CardColor `json:"guess,omitempty"`
	Card  *Card     `json:"card,omitempty"`
	Won   bool      `json:"won"`
	Coins int       `json:"coins"`
}

// DailyBonusPayload is the event payload for bonus.daily.* events
type DailyBonusPayload struct {
	Amount    int    `json:"amount"`
	Coins     int    `json:"coins"`
	ClaimDate string `json:"claim_date"`
}

// AchievementPayload is the event payload for achievement.unlocked events
type AchievementPayload struct {
	Achievement string `json:"achievement"`
	TotalSpins  int    `json:"total_spins"`
}
