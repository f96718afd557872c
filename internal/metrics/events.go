package metrics

import (
	"context"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/event"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
	"github.com/osse101/SpinSurvive_Go/internal/slots"
)

// EventMetricsCollector subscribes to game events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SpinSettled,
		event.DoubleResolved,
		event.DoubleSkipped,
		event.DailyBonusClaimed,
		event.DailyBonusReset,
		event.AchievementUnlocked,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are counted as handler errors and otherwise ignored.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.SpinSettled:
		err = recordSpin(evt.Payload)
	case event.DoubleResolved:
		err = recordDouble(evt.Payload)
	case event.DoubleSkipped:
		DoubleOrNothing.WithLabelValues(ResultSkipped).Inc()
	case event.DailyBonusClaimed:
		err = recordBonus(evt.Payload)
	case event.DailyBonusReset:
		DailyBonusResets.Inc()
	case event.AchievementUnlocked:
		err = recordAchievement(evt.Payload)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordSpin(raw interface{}) error {
	p, err := event.DecodePayload[domain.SpinSettledPayload](raw)
	if err != nil {
		return err
	}
	Spins.WithLabelValues(slots.Classify(p.Symbols, p.BasePayout)).Inc()
	CoinsWagered.Add(float64(p.Cost))
	CoinsPaidOut.Add(float64(p.FinalPayout))
	WalletCoins.Set(float64(p.Coins))
	WinStreak.Set(float64(p.WinStreak))
	return nil
}

func recordDouble(raw interface{}) error {
	p, err := event.DecodePayload[domain.DoubleResolvedPayload](raw)
	if err != nil {
		return err
	}
	if p.Won {
		DoubleOrNothing.WithLabelValues(ResultWon).Inc()
		DoubleCoinsWon.Add(float64(p.Stake))
	} else {
		DoubleOrNothing.WithLabelValues(ResultLost).Inc()
		DoubleCoinsLost.Add(float64(p.Stake))
	}
	WalletCoins.Set(float64(p.Coins))
	return nil
}

func recordBonus(raw interface{}) error {
	p, err := event.DecodePayload[domain.DailyBonusPayload](raw)
	if err != nil {
		return err
	}
	DailyBonusClaims.Inc()
	DailyBonusCoins.Add(float64(p.Amount))
	WalletCoins.Set(float64(p.Coins))
	return nil
}

func recordAchievement(raw interface{}) error {
	p, err := event.DecodePayload[domain.AchievementPayload](raw)
	if err != nil {
		return err
	}
	AchievementsUnlocked.WithLabelValues(p.Achievement).Inc()
	return nil
}
