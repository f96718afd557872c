package slots

import (
	"fmt"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// CalculatePayout scores three reel symbols against the paytable.
// Rules are checked in order and the first match wins: three of a kind,
// exactly two of a kind, then the gem, star and clover consolations.
func CalculatePayout(symbols []domain.Symbol) (int, error) {
	if err := validateSymbols(symbols); err != nil {
		return 0, err
	}

	a, b, c := symbols[0], symbols[1], symbols[2]

	if a == b && b == c {
		return ThreeOfAKindPayouts[a], nil
	}

	if a == b || b == c || a == c {
		return TwoOfAKindPayout, nil
	}

	switch {
	case contains(symbols, domain.SymbolGem):
		return GemPayout, nil
	case contains(symbols, domain.SymbolStar):
		return StarPayout, nil
	case contains(symbols, domain.SymbolClover):
		return CloverPayout, nil
	}

	return 0, nil
}

// Classify returns the outcome label for a scored set of symbols
func Classify(symbols []domain.Symbol, basePayout int) string {
	if len(symbols) != domain.ReelCount || basePayout == 0 {
		return OutcomeLoss
	}
	a, b, c := symbols[0], symbols[1], symbols[2]
	switch {
	case a == b && b == c:
		return OutcomeThreeOfAKind
	case a == b || b == c || a == c:
		return OutcomeTwoOfAKind
	default:
		return OutcomeSpecial
	}
}

func validateSymbols(symbols []domain.Symbol) error {
	if len(symbols) != domain.ReelCount {
		return fmt.Errorf("%w: "+ErrFmtReelCount, domain.ErrInvalidOutcome, domain.ReelCount, len(symbols))
	}
	for _, s := range symbols {
		if !s.IsValid() {
			return fmt.Errorf("%w: "+ErrFmtUnknownSymbol, domain.ErrInvalidOutcome, s)
		}
	}
	return nil
}

func contains(symbols []domain.Symbol, target domain.Symbol) bool {
	for _, s := range symbols {
		if s == target {
			return true
		}
	}
	return false
}
