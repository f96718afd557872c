package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wallet errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Daily bonus errors
	ErrMsgBonusAlreadyClaimed = "daily bonus already claimed"

	// Reel errors
	ErrMsgInvalidOutcome = "invalid spin outcome"

	// Double-or-nothing errors
	ErrMsgInvalidGuess   = "invalid color guess"
	ErrMsgNoDoubleOffer  = "no double-or-nothing offer pending"
	ErrMsgActionInFlight = "action already in progress"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrBonusAlreadyClaimed = errors.New(ErrMsgBonusAlreadyClaimed)
	ErrInvalidOutcome      = errors.New(ErrMsgInvalidOutcome)
	ErrInvalidGuess        = errors.New(ErrMsgInvalidGuess)
	ErrNoDoubleOffer       = errors.New(ErrMsgNoDoubleOffer)
	ErrActionInFlight      = errors.New(ErrMsgActionInFlight)
	ErrInvalidInput        = errors.New(ErrMsgInvalidInput)
)
