package slots

import (
	"fmt"
	"strings"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// SettleSpin applies one spin to the state and returns the new state.
// The input state is never modified; on error it is returned unchanged.
func SettleSpin(state domain.GameState, symbols []domain.Symbol) (domain.GameState, *domain.SpinReport, error) {
	if !state.CanAffordSpin() {
		return state, nil, fmt.Errorf("%w: "+ErrFmtSpinCost, domain.ErrInsufficientFunds, domain.SpinCost, state.Coins)
	}

	base, err := CalculatePayout(symbols)
	if err != nil {
		return state, nil, err
	}

	outcome := domain.SpinOutcome{
		Symbols:    append([]domain.Symbol(nil), symbols...),
		BasePayout: base,
		Multiplier: StreakMultiplier(state.WinStreak),
	}
	final := outcome.FinalPayout()

	next := state.Clone()
	next.Coins = state.Coins - domain.SpinCost + final
	next.TotalSpins = state.TotalSpins + 1
	next.WinStreak = NextStreak(state.WinStreak, final)
	next.LastWinAmount = final

	report := &domain.SpinReport{
		SpinOutcome: outcome,
		SpinNumber:  next.TotalSpins,
		FinalPayout: final,
		Cost:        domain.SpinCost,
		NetChange:   final - domain.SpinCost,
		IsWin:       final > 0,
		WinStreak:   next.WinStreak,
	}

	if final >= domain.DoubleOrNothingThreshold {
		report.DoubleOrNothing = true
		report.DoubleStake = final
	}

	if final >= domain.BigWinnerThreshold && next.AddAchievement(domain.AchievementBigWinner) {
		report.AchievementsUnlocked = append(report.AchievementsUnlocked, domain.AchievementBigWinner)
	}

	report.Coins = next.Coins
	report.Message = formatMessage(report)

	return next, report, nil
}

func formatMessage(r *domain.SpinReport) string {
	var b strings.Builder
	switch {
	case !r.IsWin:
		b.WriteString(MsgLoss)
	case r.Multiplier > 1:
		fmt.Fprintf(&b, MsgFmtStreakWin, r.FinalPayout, r.Multiplier)
	default:
		fmt.Fprintf(&b, MsgFmtWin, r.FinalPayout)
	}
	for _, a := range r.AchievementsUnlocked {
		fmt.Fprintf(&b, MsgFmtAchievement, a)
	}
	if r.DoubleOrNothing {
		fmt.Fprintf(&b, MsgFmtDoubleOffer, r.DoubleStake)
	}
	return b.String()
}
