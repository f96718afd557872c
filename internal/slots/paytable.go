package slots

import "github.com/osse101/SpinSurvive_Go/internal/domain"

// BuildPaytable describes the machine rules for display
func BuildPaytable() domain.Paytable {
	three := make([]domain.PaytableEntry, 0, len(domain.Symbols))
	for _, s := range domain.Symbols {
		three = append(three, domain.PaytableEntry{
			Symbol:      s,
			DisplayName: s.DisplayName(),
			Payout:      ThreeOfAKindPayouts[s],
		})
	}

	special := []domain.PaytableEntry{
		{Symbol: domain.SymbolGem, DisplayName: domain.SymbolGem.DisplayName(), Payout: GemPayout},
		{Symbol: domain.SymbolStar, DisplayName: domain.SymbolStar.DisplayName(), Payout: StarPayout},
		{Symbol: domain.SymbolClover, DisplayName: domain.SymbolClover.DisplayName(), Payout: CloverPayout},
	}

	return domain.Paytable{
		ThreeOfAKind:             three,
		TwoOfAKind:               TwoOfAKindPayout,
		SpecialSymbols:           special,
		SpinCost:                 domain.SpinCost,
		DoubleOrNothingThreshold: domain.DoubleOrNothingThreshold,
		BigWinnerThreshold:       domain.BigWinnerThreshold,
		StreakStep:               StreakStep,
	}
}
