package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

func TestLockManager_GetLockSameKey(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock("spin"), lm.GetLock("spin"))
	assert.NotSame(t, lm.GetLock("spin"), lm.GetLock("double_or_nothing"))
}

func TestLockManager_TryRun(t *testing.T) {
	lm := NewLockManager()

	t.Run("runs and returns fn error", func(t *testing.T) {
		boom := errors.New("boom")
		err := lm.TryRun("spin", func() error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, lm.InFlight("spin"), "lock released after error")
	})

	t.Run("rejects duplicate while in flight", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		done := make(chan error)

		go func() {
			done <- lm.TryRun("spin", func() error {
				close(started)
				<-release
				return nil
			})
		}()

		<-started
		assert.True(t, lm.InFlight("spin"))

		err := lm.TryRun("spin", func() error {
			t.Fatal("duplicate action must not run")
			return nil
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrActionInFlight)
		assert.Contains(t, err.Error(), "spin")

		// a different action is not blocked
		assert.NoError(t, lm.TryRun("daily_bonus", func() error { return nil }))

		close(release)
		require.NoError(t, <-done)
		assert.NoError(t, lm.TryRun("spin", func() error { return nil }))
	})
}

func TestLockManager_TryRunConcurrent(t *testing.T) {
	lm := NewLockManager()
	var running, maxRunning int32
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = lm.TryRun("spin", func() error {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}
