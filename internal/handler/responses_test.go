package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughCoinsError},
		{"wrapped insufficient funds", fmt.Errorf("%w: have 20", domain.ErrInsufficientFunds), http.StatusBadRequest, ErrMsgNotEnoughCoinsError},
		{"bonus claimed", domain.ErrBonusAlreadyClaimed, http.StatusTooManyRequests, ErrMsgBonusClaimedError},
		{"invalid guess", fmt.Errorf("%w: green", domain.ErrInvalidGuess), http.StatusBadRequest, ErrMsgInvalidGuessError},
		{"no offer", domain.ErrNoDoubleOffer, http.StatusConflict, ErrMsgNoDoubleOfferError},
		{"in flight", domain.ErrActionInFlight, http.StatusConflict, ErrMsgActionInFlightError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
		{"invalid outcome", domain.ErrInvalidOutcome, http.StatusInternalServerError, ErrMsgInvalidOutcomeError},
		{"infrastructure", errors.New("dial tcp 10.0.0.1:6379: connection refused"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type sample struct {
		Guess string `validate:"required,cardcolor"`
	}

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("not a validation error", func(t *testing.T) {
		errs := FormatValidationError(errors.New("boom"))
		assert.Equal(t, ErrMsgInvalidRequestFormat, errs["error"])
	})

	t.Run("card color", func(t *testing.T) {
		err := GetValidator().ValidateStruct(sample{Guess: "purple"})
		var validationErrors validator.ValidationErrors
		assert.True(t, errors.As(err, &validationErrors))
		assert.Equal(t, "Must be red or black", FormatValidationError(err)["guess"])
	})

	t.Run("accepts either case", func(t *testing.T) {
		assert.NoError(t, GetValidator().ValidateStruct(sample{Guess: "Black"}))
		assert.NoError(t, GetValidator().ValidateStruct(sample{Guess: "red"}))
	})
}
