package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/SpinSurvive_Go/internal/event"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub) *Subscriber {
	return &Subscriber{hub: hub}
}

// Subscribe registers the forwarding handler for every game event type
func (s *Subscriber) Subscribe(bus event.Bus) {
	names := make([]string, 0, len(GameEventTypes))
	for _, eventType := range GameEventTypes {
		bus.Subscribe(eventType, s.HandleEvent)
		names = append(names, string(eventType))
	}

	slog.Info(LogMsgSubscriberReady, "types", names)
}

// HandleEvent forwards a bus event to connected clients.
// The bus payload is already JSON-shaped, so it is sent as is.
// A full broadcast buffer drops the event without failing the publish.
func (s *Subscriber) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	if !s.hub.Broadcast(string(evt.Type), evt.Payload) {
		log.Warn(LogMsgEventDropped, "event_type", evt.Type)
		return nil
	}

	log.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "clients", s.hub.ClientCount())
	return nil
}
