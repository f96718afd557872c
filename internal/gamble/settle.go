package gamble

import (
	"fmt"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// SettleDoubleOrNothing resolves a color guess against a drawn card.
// A correct guess adds the stake to the wallet; a wrong one forfeits it.
// The input state is never modified.
func SettleDoubleOrNothing(state domain.GameState, stake int, guess domain.CardColor, card domain.Card) (domain.GameState, *domain.DoubleReport, error) {
	if !guess.IsValid() {
		return state, nil, fmt.Errorf("%w: "+ErrFmtGuess, domain.ErrInvalidGuess, guess)
	}
	if stake <= 0 {
		return state, nil, fmt.Errorf("%w: "+ErrFmtStake, domain.ErrInvalidInput, stake)
	}

	next := state.Clone()
	won := card.Color() == guess

	report := &domain.DoubleReport{
		Stake:     stake,
		Guess:     guess,
		Card:      card,
		CardColor: card.Color(),
		Won:       won,
	}

	if won {
		next.Coins = state.Coins + stake
		report.NetChange = stake
		report.Message = fmt.Sprintf(MsgFmtWon, card, stake)
	} else {
		next.Coins = state.Coins - stake
		report.NetChange = -stake
		report.Message = fmt.Sprintf(MsgFmtLost, card, stake)
	}
	report.Coins = next.Coins

	return next, report, nil
}
