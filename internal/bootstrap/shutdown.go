package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/SpinSurvive_Go/internal/event"
	"github.com/osse101/SpinSurvive_Go/internal/server"
	"github.com/osse101/SpinSurvive_Go/internal/sse"
	"github.com/osse101/SpinSurvive_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	EventHub           *sse.Hub
	Server             *server.Server
	DailyResetWorker   *worker.DailyResetWorker
	ResilientPublisher *event.ResilientPublisher
	Store              io.Closer
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in this order:
// 1. Event stream hub (end open SSE connections so the server can drain)
// 2. HTTP server (stop accepting new requests)
// 3. Daily reset worker (cancel the pending timer, wait for a running refresh)
// 4. Event publisher (flush pending events)
// 5. State store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.EventHub != nil {
		slog.Info(LogMsgClosingEventStreams)
		components.EventHub.Stop()
	}

	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.DailyResetWorker != nil {
		if err := components.DailyResetWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgDailyResetWorkerFailed, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
