package sse

import (
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/event"
)

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second

	// TypesQueryParam selects a comma separated subset of event types
	TypesQueryParam = "types"
)

// Stream-only event types
const (
	// EventTypeConnected is the first message on every stream
	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// GameEventTypes are the bus events forwarded to connected clients.
// The SSE event name is the bus event type.
var GameEventTypes = []event.Type{
	event.SpinSettled,
	event.DoubleResolved,
	event.DoubleSkipped,
	event.DailyBonusClaimed,
	event.DailyBonusReset,
	event.AchievementUnlocked,
}

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgEventDropped       = "SSE broadcast buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscriberReady    = "SSE subscriber registered for event types"
	ErrMsgStreamUnsupported  = "Streaming not supported"
)
