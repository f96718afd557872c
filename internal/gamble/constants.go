package gamble

// DeckSize is a standard deck without jokers
const DeckSize = 52

// RanksPerSuit covers ace (1) to king (13)
const RanksPerSuit = 13

// User-facing messages
const (
	MsgFmtWon  = "The card was the %s. You doubled up and won %d more coins!"
	MsgFmtLost = "The card was the %s. You lost %d coins. Better luck next time!"
)

// Error message formats
const (
	ErrFmtGuess = "guess must be red or black, got %q"
	ErrFmtStake = "stake must be positive, got %d"
)
