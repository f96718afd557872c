package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/game"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

// DailyTrigger forces an immediate daily bonus refresh
type DailyTrigger interface {
	Trigger(ctx context.Context) (bool, error)
}

// AdminHandler handles maintenance endpoints
type AdminHandler struct {
	service game.Service
	daily   DailyTrigger
}

// NewAdminHandler creates a new AdminHandler. daily may be nil.
func NewAdminHandler(service game.Service, daily DailyTrigger) *AdminHandler {
	return &AdminHandler{service: service, daily: daily}
}

// DailyRefreshResponse reports the outcome of a manual daily refresh
type DailyRefreshResponse struct {
	Reopened       bool      `json:"reopened"`
	NextDailyReset time.Time `json:"next_daily_reset"`
}

// HandleReset wipes the saved game
// @Summary Reset game
// @Description Removes the saved state and the last claim date; the session starts over with 1000 coins
// @Tags admin
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/reset [post]
func (h *AdminHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info(LogMsgResetRequested)

	state, err := h.service.Reset(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgResetFailed, err)
		return
	}

	log.Info(LogMsgResetCompleted, "coins", state.Coins)
	respondJSON(w, http.StatusOK, StateResponse{
		State:          state,
		CanSpin:        state.CanAffordSpin(),
		NextDailyReset: h.service.NextDailyReset(),
	})
}

// HandleDailyRefresh re-evaluates daily bonus eligibility now
// @Summary Refresh daily bonus
// @Description Re-derives the daily bonus flag immediately instead of waiting for midnight
// @Tags admin
// @Produce json
// @Success 200 {object} DailyRefreshResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/daily-refresh [post]
func (h *AdminHandler) HandleDailyRefresh(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Info(LogMsgDailyRefreshManual)

	var reopened bool
	var err error
	if h.daily != nil {
		reopened, err = h.daily.Trigger(r.Context())
	} else {
		reopened, err = h.service.RefreshDailyBonus(r.Context())
	}
	if err != nil {
		respondServiceError(w, r, ErrMsgRefreshDailyFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DailyRefreshResponse{
		Reopened:       reopened,
		NextDailyReset: h.service.NextDailyReset(),
	})
}
