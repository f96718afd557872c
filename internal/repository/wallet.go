package repository

import (
	"context"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// Wallet defines the persistence required by the game service.
// Load never fails for a missing save: it returns the defaults for a new player.
type Wallet interface {
	Load(ctx context.Context, now time.Time) (domain.GameState, error)
	Save(ctx context.Context, state domain.GameState) error
	SaveClaim(ctx context.Context, state domain.GameState, claimDate string) error
	LastBonusDate(ctx context.Context) (string, error)
	Reset(ctx context.Context) error
}
