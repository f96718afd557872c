package domain

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CardColor is the player's guess and the drawn card's color
type CardColor string

const (
	ColorRed   CardColor = "red"
	ColorBlack CardColor = "black"
)

// IsValid reports whether the color is red or black
func (c CardColor) IsValid() bool {
	return c == ColorRed || c == ColorBlack
}

// Suit of a playing card
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitSpades   Suit = "spades"
	SuitClubs    Suit = "clubs"
)

// Suits in deck order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitSpades, SuitClubs}

// Color returns the suit color
func (s Suit) Color() CardColor {
	switch s {
	case SuitHearts, SuitDiamonds:
		return ColorRed
	default:
		return ColorBlack
	}
}

// Card is a single playing card, rank 1 (ace) to 13 (king)
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// Color returns the card color
func (c Card) Color() CardColor {
	return c.Suit.Color()
}

// String renders the card for logs, e.g. "Queen of Hearts"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", rankName(c.Rank), cases.Title(language.English).String(string(c.Suit)))
}

func rankName(rank int) string {
	switch rank {
	case 1:
		return "Ace"
	case 11:
		return "Jack"
	case 12:
		return "Queen"
	case 13:
		return "King"
	default:
		return fmt.Sprintf("%d", rank)
	}
}

// DoubleOffer is the one-shot double-or-nothing opportunity opened by a spin
type DoubleOffer struct {
	Stake      int `json:"stake"`
	SpinNumber int `json:"spin_number"`
}

// DoubleReport is returned after a double-or-nothing guess is settled
type DoubleReport struct {
	Stake     int       `json:"stake"`
	Guess     CardColor `json:"guess"`
	Card      Card      `json:"card"`
	CardColor CardColor `json:"card_color"`
	Won       bool      `json:"won"`
	NetChange int       `json:"net_change"`
	Coins     int       `json:"coins"`
	Message   string    `json:"message"`
}
