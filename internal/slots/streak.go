package slots

// StreakMultiplier returns the payout multiplier for the streak held before a spin
func StreakMultiplier(winStreak int) int {
	if winStreak < 0 {
		winStreak = 0
	}
	return winStreak/StreakStep + 1
}

// NextStreak advances the streak on any positive payout and resets it otherwise
func NextStreak(winStreak, finalPayout int) int {
	if finalPayout > 0 {
		return winStreak + 1
	}
	return 0
}
