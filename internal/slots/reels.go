package slots

import (
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// Reels draws symbols for the three reels
type Reels struct {
	rng utils.RandomSource
}

// NewReels creates reels backed by the given random source
func NewReels(rng utils.RandomSource) *Reels {
	return &Reels{rng: rng}
}

// Spin draws each reel independently and uniformly from the alphabet
func (r *Reels) Spin() []domain.Symbol {
	out := make([]domain.Symbol, domain.ReelCount)
	for i := range out {
		out[i] = domain.Symbols[r.rng.IntN(len(domain.Symbols))]
	}
	return out
}
