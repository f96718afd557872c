package gamble

import (
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// Deck draws single cards, with replacement, from a standard 52-card deck
type Deck struct {
	rng utils.RandomSource
}

// NewDeck creates a deck backed by the given random source
func NewDeck(rng utils.RandomSource) *Deck {
	return &Deck{rng: rng}
}

// Draw picks one card uniformly. Half the deck is red, so a color guess is a fair coin.
func (d *Deck) Draw() domain.Card {
	return CardAt(d.rng.IntN(DeckSize))
}

// CardAt maps a deck index in [0, 52) to its card, suits in deck order
func CardAt(idx int) domain.Card {
	idx = ((idx % DeckSize) + DeckSize) % DeckSize
	return domain.Card{
		Rank: idx%RanksPerSuit + 1,
		Suit: domain.Suits[idx/RanksPerSuit],
	}
}
