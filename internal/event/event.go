package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Metadata  Metadata    `json:"metadata"`
	Timestamp int64       `json:"timestamp"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Game event types
const (
	SpinSettled         Type = Type(domain.EventTypeSpinSettled)
	DoubleResolved      Type = Type(domain.EventTypeDoubleResolved)
	DoubleSkipped       Type = Type(domain.EventTypeDoubleSkipped)
	DailyBonusClaimed   Type = Type(domain.EventTypeDailyBonusClaimed)
	DailyBonusReset     Type = Type(domain.EventTypeDailyBonusReset)
	AchievementUnlocked Type = Type(domain.EventTypeAchievementUnlocked)
)

func newEvent(t Type, payload interface{}, at time.Time) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: at.Unix(),
	}
}

// NewSpinSettledEvent creates a slots.spin.settled event from a settled spin
func NewSpinSettledEvent(report *domain.SpinReport, at time.Time) Event {
	return newEvent(SpinSettled, domain.SpinSettledPayload{
		Symbols:     report.Symbols,
		BasePayout:  report.BasePayout,
		Multiplier:  report.Multiplier,
		FinalPayout: report.FinalPayout,
		Cost:        report.Cost,
		Coins:       report.Coins,
		WinStreak:   report.WinStreak,
		IsWin:       report.IsWin,
	}, at)
}

// NewDoubleResolvedEvent creates a gamble.double.resolved event
func NewDoubleResolvedEvent(report *domain.DoubleReport, at time.Time) Event {
	card := report.Card
	return newEvent(DoubleResolved, domain.DoubleResolvedPayload{
		Stake: report.Stake,
		Guess: report.Guess,
		Card:  &card,
		Won:   report.Won,
		Coins: report.Coins,
	}, at)
}

// NewDoubleSkippedEvent creates a gamble.double.skipped event
func NewDoubleSkippedEvent(stake, coins int, at time.Time) Event {
	return newEvent(DoubleSkipped, domain.DoubleResolvedPayload{
		Stake: stake,
		Coins: coins,
	}, at)
}

// NewDailyBonusClaimedEvent creates a bonus.daily.claimed event
func NewDailyBonusClaimedEvent(report *domain.BonusReport, at time.Time) Event {
	return newEvent(DailyBonusClaimed, domain.DailyBonusPayload{
		Amount:    report.Amount,
		Coins:     report.Coins,
		ClaimDate: report.ClaimDate,
	}, at)
}

// NewDailyBonusResetEvent creates a bonus.daily.reset event
func NewDailyBonusResetEvent(coins int, lastClaim string, at time.Time) Event {
	return newEvent(DailyBonusReset, domain.DailyBonusPayload{
		Coins:     coins,
		ClaimDate: lastClaim,
	}, at)
}

// NewAchievementUnlockedEvent creates an achievement.unlocked event
func NewAchievementUnlockedEvent(achievement string, totalSpins int, at time.Time) Event {
	e := newEvent(AchievementUnlocked, domain.AchievementPayload{
		Achievement: achievement,
		TotalSpins:  totalSpins,
	}, at)
	e.Metadata = map[string]interface{}{"achievement": achievement}
	return e
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber for the event type synchronously.
// All handlers run even when one fails; the failures are joined in the returned error.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscriberCount returns the number of handlers registered for an event type
func (b *MemoryBus) SubscriberCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
