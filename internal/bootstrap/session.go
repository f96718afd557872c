package bootstrap

import (
	"log/slog"

	"github.com/osse101/SpinSurvive_Go/internal/config"
	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// NewRandomSource returns the random source named by the configuration
func NewRandomSource(cfg *config.Config) utils.RandomSource {
	slog.Info(LogMsgRandomSourceSelected, "source", cfg.RandomSource)
	if cfg.RandomSource == config.RandomSourceSecure {
		return utils.NewSecureSource()
	}
	return utils.NewMathSource()
}

// NewDailyGate builds the calendar-day gate for the configured time zone
func NewDailyGate(cfg *config.Config) (*cooldown.Daily, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	slog.Info(LogMsgTimezoneSelected, "timezone", loc.String())
	return cooldown.NewDaily(loc), nil
}
