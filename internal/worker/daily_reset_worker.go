package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/logger"
)

// ErrWorkerStopped is returned by Trigger once Shutdown has begun
var ErrWorkerStopped = errors.New("daily reset worker is stopped")

// DailyRefresher is the part of the game service the worker drives
type DailyRefresher interface {
	RefreshDailyBonus(ctx context.Context) (bool, error)
	NextDailyReset() time.Time
}

// DailyResetWorker re-opens the daily bonus of a running session at each calendar-day boundary
type DailyResetWorker struct {
	svc      DailyRefresher
	now      func() time.Time
	grace    time.Duration
	timer    *time.Timer
	shutdown chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker. A nil clock means time.Now.
func NewDailyResetWorker(svc DailyRefresher, clock func() time.Time) *DailyResetWorker {
	if clock == nil {
		clock = time.Now
	}
	return &DailyResetWorker{
		svc:      svc,
		now:      clock,
		grace:    ResetGrace,
		shutdown: make(chan struct{}),
	}
}

// Start schedules the first refresh
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

func (w *DailyResetWorker) untilNextReset() time.Duration {
	return w.svc.NextDailyReset().Sub(w.now()) + w.grace
}

func (w *DailyResetWorker) stopped() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

// scheduleNext arms the timer for the next day boundary
func (w *DailyResetWorker) scheduleNext() {
	duration := w.untilNextReset()
	if duration < w.grace {
		duration = w.grace
	}
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped() {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling so a long timer that drifts cannot fire far from midnight
	if duration > StandbyThreshold {
		waitDuration := duration - StandbyWakeBefore
		w.timer = time.AfterFunc(waitDuration, w.scheduleNext)
		log.Info(LogMsgDailyResetStandby, "next_check_at", w.now().Add(waitDuration))
		return
	}

	w.timer = time.AfterFunc(duration, func() {
		if w.stopped() {
			return
		}

		// Fired early: go round again for the remaining time
		if rem := w.untilNextReset(); rem > EarlyFireTolerance && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext()
	})
	log.Info(LogMsgDailyResetApproach, "next_reset_at", w.now().Add(duration))
}

// executeReset runs the refresh in a tracked goroutine.
// The WaitGroup is incremented under w.mu so Shutdown never waits on a counter that can still grow.
func (w *DailyResetWorker) executeReset() {
	w.mu.Lock()
	if w.stopped() {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		_, _ = w.run(context.Background())
	}()
}

func (w *DailyResetWorker) run(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetStarting)

	reopened, err := w.svc.RefreshDailyBonus(ctx)
	if err != nil {
		log.Error(LogMsgDailyResetFailed, "error", err)
		return false, err
	}

	log.Info(LogMsgDailyResetCompleted, "bonus_reopened", reopened)
	return reopened, nil
}

// Trigger runs a refresh immediately, outside the schedule
func (w *DailyResetWorker) Trigger(ctx context.Context) (bool, error) {
	w.mu.Lock()
	if w.stopped() {
		w.mu.Unlock()
		return false, ErrWorkerStopped
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	logger.FromContext(ctx).Info(LogMsgDailyResetManualTrigger)
	return w.run(ctx)
}

// Shutdown cancels the pending timer and waits for an in-flight refresh to complete
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	w.mu.Lock()
	if !w.stopped() {
		close(w.shutdown)
	}
	if w.timer != nil {
		w.timer.Stop()
		log.Info(LogMsgCancelledPending)
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
