package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbol is one face of a reel
type Symbol string

const (
	SymbolCherry Symbol = "cherry"
	SymbolLemon  Symbol = "lemon"
	SymbolOrange Symbol = "orange"
	SymbolGrape  Symbol = "grape"
	SymbolBell   Symbol = "bell"
	SymbolGem    Symbol = "gem"
	SymbolStar   Symbol = "star"
	SymbolClover Symbol = "clover"
)

// Symbols is the reel alphabet in paytable order
var Symbols = []Symbol{
	SymbolCherry,
	SymbolLemon,
	SymbolOrange,
	SymbolGrape,
	SymbolBell,
	SymbolGem,
	SymbolStar,
	SymbolClover,
}

// ReelCount is the number of reels on the machine
const ReelCount = 3

// IsValid reports whether the symbol belongs to the alphabet
func (s Symbol) IsValid() bool {
	for _, sym := range Symbols {
		if sym == s {
			return true
		}
	}
	return false
}

// DisplayName returns the title-cased name for UI labels
func (s Symbol) DisplayName() string {
	return cases.Title(language.English).String(string(s))
}

// SpinOutcome is the transient result of drawing and scoring the reels.
// It is never persisted.
type SpinOutcome struct {
	Symbols    []Symbol `json:"symbols"`
	BasePayout int      `json:"base_payout"`
	Multiplier int      `json:"multiplier"`
}

// FinalPayout applies the streak multiplier to the base payout
func (o SpinOutcome) FinalPayout() int {
	return o.BasePayout * o.Multiplier
}

// SpinReport is returned to the UI after a spin has been settled
type SpinReport struct {
	SpinOutcome
	SpinNumber           int      `json:"spin_number"`
	FinalPayout          int      `json:"final_payout"`
	Cost                 int      `json:"cost"`
	NetChange            int      `json:"net_change"`
	IsWin                bool     `json:"is_win"`
	WinStreak            int      `json:"win_streak"`
	Coins                int      `json:"coins"`
	DoubleOrNothing      bool     `json:"double_or_nothing"`
	DoubleStake          int      `json:"double_stake,omitempty"`
	AchievementsUnlocked []string `json:"achievements_unlocked,omitempty"`
	Message              string   `json:"message"`
}

// PaytableEntry is one three-of-a-kind line of the paytable
type PaytableEntry struct {
	Symbol      Symbol `json:"symbol"`
	DisplayName string `json:"display_name"`
	Payout      int    `json:"payout"`
}

// Paytable describes the rules for UI display
type Paytable struct {
	ThreeOfAKind             []PaytableEntry `json:"three_of_a_kind"`
	TwoOfAKind               int             `json:"two_of_a_kind"`
	SpecialSymbols           []PaytableEntry `json:"special_symbols"`
	SpinCost                 int             `json:"spin_cost"`
	DoubleOrNothingThreshold int             `json:"double_or_nothing_threshold"`
	BigWinnerThreshold       int             `json:"big_winner_threshold"`
	StreakStep               int             `json:"streak_step"`
}
