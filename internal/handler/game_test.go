package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

var testNextReset = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHandleGetState(t *testing.T) {
	t.Run("Success with pending offer", func(t *testing.T) {
		svc := &MockGameService{}
		state := domain.GameState{Coins: 1200, TotalSpins: 4, WinStreak: 1, Achievements: []string{}}
		svc.On("State", mock.Anything).Return(state, nil)
		svc.On("PendingOffer").Return(&domain.DoubleOffer{Stake: 250, SpinNumber: 4})
		svc.On("NextDailyReset").Return(testNextReset)

		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleGetState(w, httptest.NewRequest("GET", "/api/v1/game/state", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp StateResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 1200, resp.State.Coins)
		assert.True(t, resp.CanSpin)
		require.NotNil(t, resp.PendingOffer)
		assert.Equal(t, 250, resp.PendingOffer.Stake)
		assert.True(t, testNextReset.Equal(resp.NextDailyReset))
		svc.AssertExpectations(t)
	})

	t.Run("Load failure hides details", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("State", mock.Anything).Return(domain.GameState{}, fmt.Errorf("failed to load game state: %w", assert.AnError))

		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleGetState(w, httptest.NewRequest("GET", "/api/v1/game/state", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgGenericServerError)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

func TestHandleSpin(t *testing.T) {
	tests := []struct {
		name           string
		report         *domain.SpinReport
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Winning spin",
			report: &domain.SpinReport{
				SpinOutcome: domain.SpinOutcome{
					Symbols:    []domain.Symbol{domain.SymbolGem, domain.SymbolGem, domain.SymbolGem},
					BasePayout: 500,
					Multiplier: 1,
				},
				FinalPayout:     500,
				Cost:            domain.SpinCost,
				IsWin:           true,
				Coins:           1450,
				DoubleOrNothing: true,
				DoubleStake:     500,
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"final_payout":500`,
		},
		{
			name:           "Insufficient funds",
			err:            domain.ErrInsufficientFunds,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughCoinsError,
		},
		{
			name:           "Spin already running",
			err:            domain.ErrActionInFlight,
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgActionInFlightError,
		},
		{
			name:           "Save failure",
			err:            fmt.Errorf("failed to save game state: %w", assert.AnError),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGameService{}
			if tt.err != nil {
				svc.On("Spin", mock.Anything).Return(nil, tt.err)
			} else {
				svc.On("Spin", mock.Anything).Return(tt.report, nil)
			}

			w := httptest.NewRecorder()
			NewGameHandler(svc).HandleSpin(w, httptest.NewRequest("POST", "/api/v1/game/spin", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleDouble(t *testing.T) {
	t.Run("Guess is lower-cased before settling", func(t *testing.T) {
		svc := &MockGameService{}
		report := &domain.DoubleReport{
			Stake:     200,
			Guess:     domain.ColorRed,
			Card:      domain.Card{Rank: 12, Suit: domain.SuitHearts},
			CardColor: domain.ColorRed,
			Won:       true,
			NetChange: 200,
			Coins:     1400,
		}
		svc.On("ResolveDouble", mock.Anything, 7, domain.ColorRed).Return(report, nil)

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"spin_number":7,"guess":"RED"}`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.DoubleReport
		decodeBody(t, w, &resp)
		assert.True(t, resp.Won)
		assert.Equal(t, 1400, resp.Coins)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid color is rejected before the service", func(t *testing.T) {
		svc := &MockGameService{}

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"spin_number":7,"guess":"green"}`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
		assert.Equal(t, "Must be red or black", resp.Fields["guess"])
		svc.AssertNotCalled(t, "ResolveDouble", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing guess", func(t *testing.T) {
		svc := &MockGameService{}

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"spin_number":7}`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "This field is required")
	})

	t.Run("Missing spin number", func(t *testing.T) {
		svc := &MockGameService{}

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"guess":"red"}`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		decodeBody(t, w, &resp)
		assert.Contains(t, resp.Fields, "spin_number")
		svc.AssertNotCalled(t, "ResolveDouble", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Malformed body", func(t *testing.T) {
		svc := &MockGameService{}

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"spin_number":7,"guess":`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("No offer pending", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("ResolveDouble", mock.Anything, 3, domain.ColorBlack).Return(nil, domain.ErrNoDoubleOffer)

		req := httptest.NewRequest("POST", "/api/v1/game/double", strings.NewReader(`{"spin_number":3,"guess":"black"}`))
		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleDouble(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNoDoubleOfferError)
	})
}

func TestHandleSkipDouble(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("SkipDouble", mock.Anything, 4).Return(domain.GameState{Coins: 1300, Achievements: []string{}}, nil)
		svc.On("PendingOffer").Return(nil)
		svc.On("NextDailyReset").Return(testNextReset)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/game/double/skip", strings.NewReader(`{"spin_number":4}`))
		NewGameHandler(svc).HandleSkipDouble(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp StateResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 1300, resp.State.Coins)
		assert.Nil(t, resp.PendingOffer)
	})

	t.Run("No offer", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("SkipDouble", mock.Anything, 4).Return(domain.GameState{}, domain.ErrNoDoubleOffer)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/game/double/skip", strings.NewReader(`{"spin_number":4}`))
		NewGameHandler(svc).HandleSkipDouble(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing spin number", func(t *testing.T) {
		svc := &MockGameService{}

		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleSkipDouble(w, httptest.NewRequest("POST", "/api/v1/game/double/skip", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "SkipDouble", mock.Anything, mock.Anything)
	})
}

func TestHandleClaimDailyBonus(t *testing.T) {
	t.Run("Claimed", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("ClaimDailyBonus", mock.Anything).Return(&domain.BonusReport{
			Amount:    321,
			Coins:     1321,
			ClaimDate: "Sat Oct 17 2026",
			NextClaim: testNextReset,
		}, nil)

		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleClaimDailyBonus(w, httptest.NewRequest("POST", "/api/v1/game/bonus/daily", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.BonusReport
		decodeBody(t, w, &resp)
		assert.Equal(t, 321, resp.Amount)
		assert.Equal(t, "Sat Oct 17 2026", resp.ClaimDate)
	})

	t.Run("Already claimed today", func(t *testing.T) {
		svc := &MockGameService{}
		svc.On("ClaimDailyBonus", mock.Anything).Return(nil, fmt.Errorf("%w: next claim at midnight", domain.ErrBonusAlreadyClaimed))

		w := httptest.NewRecorder()
		NewGameHandler(svc).HandleClaimDailyBonus(w, httptest.NewRequest("POST", "/api/v1/game/bonus/daily", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgBonusClaimedError)
	})
}

func TestHandleGetStats(t *testing.T) {
	svc := &MockGameService{}
	svc.On("Stats", mock.Anything).Return(&domain.StatsSummary{
		Coins:            1000,
		TotalSpins:       10,
		WinStreak:        3,
		StreakMultiplier: 2,
		WinRate:          30,
		Achievements:     []string{},
	}, nil)

	w := httptest.NewRecorder()
	NewGameHandler(svc).HandleGetStats(w, httptest.NewRequest("GET", "/api/v1/game/stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp domain.StatsSummary
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.StreakMultiplier)
	assert.InDelta(t, 30.0, resp.WinRate, 0.001)
}

func TestHandleGetPaytable(t *testing.T) {
	svc := &MockGameService{}
	svc.On("Paytable").Return(domain.Paytable{
		ThreeOfAKind: []domain.PaytableEntry{{Symbol: domain.SymbolClover, DisplayName: "Clover", Payout: 1000}},
		TwoOfAKind:   25,
		SpinCost:     domain.SpinCost,
	})

	w := httptest.NewRecorder()
	NewGameHandler(svc).HandleGetPaytable(w, httptest.NewRequest("GET", "/api/v1/game/paytable", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"two_of_a_kind":25`)
	assert.Contains(t, w.Body.String(), `"spin_cost":50`)
}
