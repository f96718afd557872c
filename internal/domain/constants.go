package domain

// Wallet defaults applied when no snapshot is stored
const (
	DefaultStartingCoins = 1000
)

// Spin economy
const (
	SpinCost = 50

	// DoubleOrNothingThreshold is the final payout that opens a double-or-nothing offer
	DoubleOrNothingThreshold = 100

	// BigWinnerThreshold is the final payout that unlocks AchievementBigWinner
	BigWinnerThreshold = 500
)

// Daily bonus reward range (inclusive)
const (
	DailyBonusMin = 100
	DailyBonusMax = 500
)

// High roller target shown on the stats panel
const (
	HighRollerCoins = 5000
)

// Achievement labels
const (
	AchievementBigWinner = "Big Winner"
)

// Storage keys, kept identical to the browser build so saved games carry over
const (
	StorageKeyGameState      = "spinSurviveGameState"
	StorageKeyLastDailyBonus = "lastDailyBonus"
)

// Action names used for in-flight exclusion and logging
const (
	ActionSpin       = "spin"
	ActionDouble     = "double_or_nothing"
	ActionDailyBonus = "daily_bonus"
	ActionReset      = "reset"
)
