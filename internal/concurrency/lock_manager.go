package concurrency

import (
	"fmt"
	"sync"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// TryRun runs fn while holding the lock for key.
// A second caller arriving while fn is still running is rejected with
// domain.ErrActionInFlight instead of queueing behind it.
func (lm *LockManager) TryRun(key string, fn func() error) error {
	lock := lm.GetLock(key)
	if !lock.TryLock() {
		return fmt.Errorf("%w: %s", domain.ErrActionInFlight, key)
	}
	defer lock.Unlock()
	return fn()
}

// InFlight reports whether an action for key is currently running
func (lm *LockManager) InFlight(key string) bool {
	lock := lm.GetLock(key)
	if lock.TryLock() {
		lock.Unlock()
		return false
	}
	return true
}
