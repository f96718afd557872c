// Package stats derives the numbers shown on the stats panel from a GameState.
package stats

import (
	"math"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/slots"
)

// Summarize builds the stats panel view of state.
//
// WinRate is the current streak divided by total spins, as a percentage rounded to
// one decimal. This is the figure players have always seen, not a true win ratio.
// Daily bonus availability trusts state.DailyBonusClaimed, which the wallet
// re-derives from the claim date on every load.
func Summarize(state domain.GameState) domain.StatsSummary {
	achievements := make([]string, len(state.Achievements))
	copy(achievements, state.Achievements)

	coins := state.Coins
	return domain.StatsSummary{
		Coins:               coins,
		TotalSpins:          state.TotalSpins,
		WinStreak:           state.WinStreak,
		StreakMultiplier:    slots.StreakMultiplier(state.WinStreak),
		WinRate:             WinRate(state.WinStreak, state.TotalSpins),
		LastWinAmount:       max(state.LastWinAmount, 0),
		HighRoller:          coins >= domain.HighRollerCoins,
		HighRollerProgress:  HighRollerProgress(coins),
		CoinsToHighRoller:   max(domain.HighRollerCoins-coins, 0),
		Achievements:        achievements,
		AchievementCount:    len(achievements),
		DailyBonusAvailable: !state.DailyBonusClaimed,
		CanSpin:             state.CanAffordSpin(),
	}
}

// WinRate returns winStreak/totalSpins as a percentage with one decimal, 0 with no spins
func WinRate(winStreak, totalSpins int) float64 {
	if totalSpins <= 0 {
		return 0
	}
	return roundTenth(float64(winStreak) / float64(totalSpins) * 100)
}

// HighRollerProgress returns the percentage of the way to HighRollerCoins, capped at 100
func HighRollerProgress(coins int) float64 {
	if coins <= 0 {
		return 0
	}
	return roundTenth(math.Min(float64(coins)/float64(domain.HighRollerCoins)*100, 100))
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
