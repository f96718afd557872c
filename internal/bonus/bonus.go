// Package bonus settles the once-per-calendar-day coin bonus.
package bonus

import (
	"fmt"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// Roll draws a bonus amount uniformly from [DailyBonusMin, DailyBonusMax]
func Roll(rng utils.RandomSource) int {
	return utils.RandomInt(rng, domain.DailyBonusMin, domain.DailyBonusMax)
}

// ClaimDailyBonus credits amount to the wallet unless lastClaim is today.
// The returned report carries the new claim date to persist.
func ClaimDailyBonus(gate *cooldown.Daily, state domain.GameState, lastClaim string, now time.Time, amount int) (domain.GameState, *domain.BonusReport, error) {
	if err := gate.Check(ActionLabel, lastClaim, now); err != nil {
		return state, nil, fmt.Errorf("%w: %w", domain.ErrBonusAlreadyClaimed, err)
	}
	if amount <= 0 {
		return state, nil, fmt.Errorf("%w: bonus amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	next := state.Clone()
	next.Coins = state.Coins + amount
	next.DailyBonusClaimed = true

	report := &domain.BonusReport{
		Amount:    amount,
		Coins:     next.Coins,
		ClaimDate: gate.DateKey(now),
		NextClaim: gate.NextReset(now),
		Message:   fmt.Sprintf(MsgFmtClaimed, amount),
	}
	return next, report, nil
}

// RefreshEligibility re-derives DailyBonusClaimed from the stored claim date
func RefreshEligibility(gate *cooldown.Daily, state domain.GameState, lastClaim string, now time.Time) domain.GameState {
	next := state.Clone()
	next.DailyBonusClaimed = gate.ClaimedToday(lastClaim, now)
	return next
}

// Available reports whether a claim would succeed now
func Available(gate *cooldown.Daily, lastClaim string, now time.Time) bool {
	return !gate.ClaimedToday(lastClaim, now)
}
