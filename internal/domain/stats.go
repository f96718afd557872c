package domain

// StatsSummary is the derived view shown on the stats panel
type StatsSummary struct {
	Coins               int      `json:"coins"`
	TotalSpins          int      `json:"total_spins"`
	WinStreak           int      `json:"win_streak"`
	StreakMultiplier    int      `json:"streak_multiplier"`
	WinRate             float64  `json:"win_rate"`
	LastWinAmount       int      `json:"last_win_amount"`
	HighRoller          bool     `json:"high_roller"`
	HighRollerProgress  float64  `json:"high_roller_progress"`
	CoinsToHighRoller   int      `json:"coins_to_high_roller"`
	Achievements        []string `json:"achievements"`
	AchievementCount    int      `json:"achievement_count"`
	DailyBonusAvailable bool     `json:"daily_bonus_available"`
	CanSpin             bool     `json:"can_spin"`
	DoubleOfferPending  bool     `json:"double_offer_pending"`
}
