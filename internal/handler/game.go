package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/game"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

// GameHandler serves the session API used by the browser UI
type GameHandler struct {
	service game.Service
}

// NewGameHandler creates a new GameHandler
func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

// StateResponse is the current session as shown by the UI
type StateResponse struct {
	State          domain.GameState    `json:"state"`
	PendingOffer   *domain.DoubleOffer `json:"pending_offer,omitempty"`
	CanSpin        bool                `json:"can_spin"`
	NextDailyReset time.Time           `json:"next_daily_reset"`
}

// DoubleRequest is the player's color guess for the offer opened by SpinNumber
type DoubleRequest struct {
	SpinNumber int    `json:"spin_number" validate:"required,min=1"`
	Guess      string `json:"guess" validate:"required,cardcolor"`
}

// SkipDoubleRequest names the offer being declined
type SkipDoubleRequest struct {
	SpinNumber int `json:"spin_number" validate:"required,min=1"`
}

func (h *GameHandler) stateResponse(state domain.GameState) StateResponse {
	return StateResponse{
		State:          state,
		PendingOffer:   h.service.PendingOffer(),
		CanSpin:        state.CanAffordSpin(),
		NextDailyReset: h.service.NextDailyReset(),
	}
}

// HandleGetState returns the current game state
// @Summary Get game state
// @Description Loads the saved session on first use and returns coins, streak, achievements and any open double-or-nothing offer
// @Tags game
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/state [get]
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.State(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStateFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, h.stateResponse(state))
}

// HandleSpin spins the reels once
// @Summary Spin the reels
// @Description Deducts the spin cost, draws three symbols and pays out. Any open double-or-nothing offer is discarded.
// @Tags game
// @Produce json
// @Success 200 {object} domain.SpinReport
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/spin [post]
func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Spin(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgSpinFailed, err)
		return
	}

	logger.FromContext(r.Context()).Debug("Spin settled",
		"symbols", report.Symbols,
		"final_payout", report.FinalPayout,
		"coins", report.Coins)
	respondJSON(w, http.StatusOK, report)
}

// HandleDouble resolves the open double-or-nothing offer
// @Summary Double or nothing
// @Description Draws a card and compares its color with the guess. A correct guess adds the stake, a wrong one removes it.
// @Tags game
// @Accept json
// @Produce json
// @Param request body DoubleRequest true "Spin number and color guess"
// @Success 200 {object} domain.DoubleReport
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/double [post]
func (h *GameHandler) HandleDouble(w http.ResponseWriter, r *http.Request) {
	var req DoubleRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionNameDouble); err != nil {
		return
	}

	guess := domain.CardColor(strings.ToLower(req.Guess))
	report, err := h.service.ResolveDouble(r.Context(), req.SpinNumber, guess)
	if err != nil {
		respondServiceError(w, r, ErrMsgDoubleFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleSkipDouble keeps the winnings and closes the offer
// @Summary Skip double or nothing
// @Tags game
// @Accept json
// @Produce json
// @Param request body SkipDoubleRequest true "Spin that opened the offer"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/double/skip [post]
func (h *GameHandler) HandleSkipDouble(w http.ResponseWriter, r *http.Request) {
	var req SkipDoubleRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionNameSkipDouble); err != nil {
		return
	}

	state, err := h.service.SkipDouble(r.Context(), req.SpinNumber)
	if err != nil {
		respondServiceError(w, r, ErrMsgSkipDoubleFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, h.stateResponse(state))
}

// HandleClaimDailyBonus credits the daily bonus
// @Summary Claim daily bonus
// @Description Credits between 100 and 500 coins once per calendar day
// @Tags game
// @Produce json
// @Success 200 {object} domain.BonusReport
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/bonus/daily [post]
func (h *GameHandler) HandleClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ClaimDailyBonus(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgClaimBonusFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleGetStats returns the derived stats panel
// @Summary Get stats
// @Tags game
// @Produce json
// @Success 200 {object} domain.StatsSummary
// @Failure 500 {object} ErrorResponse
// @Router /game/stats [get]
func (h *GameHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Stats(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStatsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleGetPaytable returns payouts, costs and thresholds
// @Summary Get paytable
// @Tags game
// @Produce json
// @Success 200 {object} domain.Paytable
// @Router /game/paytable [get]
func (h *GameHandler) HandleGetPaytable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.Paytable())
}
