package slots

import "github.com/osse101/SpinSurvive_Go/internal/domain"

// ThreeOfAKindPayouts is the base payout for three identical symbols
var ThreeOfAKindPayouts = map[domain.Symbol]int{
	domain.SymbolCherry: 100,
	domain.SymbolLemon:  150,
	domain.SymbolOrange: 200,
	domain.SymbolGrape:  250,
	domain.SymbolBell:   300,
	domain.SymbolGem:    500,
	domain.SymbolStar:   750,
	domain.SymbolClover: 1000,
}

// TwoOfAKindPayout is paid when exactly two reels match
const TwoOfAKindPayout = 25

// Special symbol consolation payouts, checked in this order
const (
	GemPayout    = 10
	StarPayout   = 15
	CloverPayout = 20
)

// StreakStep is how many consecutive wins raise the multiplier by one
const StreakStep = 3

// Outcome labels used in logs and metrics
const (
	OutcomeThreeOfAKind = "three_of_a_kind"
	OutcomeTwoOfAKind   = "two_of_a_kind"
	OutcomeSpecial      = "special"
	OutcomeLoss         = "loss"
)

// User-facing messages
const (
	MsgFmtWin         = "You won %d coins!"
	MsgFmtStreakWin   = "You won %d coins with a x%d streak multiplier!"
	MsgLoss           = "No luck this time. Spin again!"
	MsgFmtDoubleOffer = " Double or nothing on %d coins?"
	MsgFmtAchievement = " Achievement unlocked: %s!"
)

// Error message formats
const (
	ErrFmtUnknownSymbol = "unknown symbol %q"
	ErrFmtReelCount     = "expected %d symbols, got %d"
	ErrFmtSpinCost      = "spin costs %d coins, you have %d"
)
