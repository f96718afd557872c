// Package wallet persists the player's GameState and daily bonus claim date
// on top of a key/value store.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/SpinSurvive_Go/internal/bonus"
	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
	"github.com/osse101/SpinSurvive_Go/internal/repository"
	"github.com/osse101/SpinSurvive_Go/internal/store"
	"github.com/osse101/SpinSurvive_Go/internal/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Repository implements repository.Wallet
type Repository struct {
	store  store.Store
	gate   *cooldown.Daily
	schema validation.SchemaValidator
}

// NewRepository creates a wallet repository. gate decides which calendar day a claim belongs to.
func NewRepository(s store.Store, gate *cooldown.Daily) *Repository {
	if gate == nil {
		gate = cooldown.NewDaily(nil)
	}
	return &Repository{store: s, gate: gate, schema: validation.NewSchemaValidator()}
}

var _ repository.Wallet = (*Repository)(nil)

// Load returns the saved state, or the new-player defaults when nothing is stored.
// A saved document that is not valid JSON or breaks the game state schema is an error.
// Fields missing from the saved JSON keep their defaults. Duplicate achievements are
// collapsed and DailyBonusClaimed is re-derived from the stored claim date in both directions.
func (r *Repository) Load(ctx context.Context, now time.Time) (domain.GameState, error) {
	log := logger.FromContext(ctx)

	state := domain.NewGameState()
	raw, err := r.store.Get(ctx, domain.StorageKeyGameState)
	switch {
	case errors.Is(err, store.ErrNotFound):
		log.Debug(LogMsgNewPlayer)
	case err != nil:
		return domain.GameState{}, fmt.Errorf("%s: %w", ErrMsgLoadStateFailed, err)
	default:
		if err := r.schema.ValidateBytes([]byte(raw), validation.GameStateSchema); err != nil {
			return domain.GameState{}, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
		if err := json.UnmarshalFromString(raw, &state); err != nil {
			return domain.GameState{}, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
	}

	before := len(state.Achievements)
	state.Normalize()
	if len(state.Achievements) != before {
		log.Info(LogMsgAchievementsDeduped, "removed", before-len(state.Achievements))
	}

	lastClaim, err := r.LastBonusDate(ctx)
	if err != nil {
		return domain.GameState{}, err
	}

	refreshed := bonus.RefreshEligibility(r.gate, state, lastClaim, now)
	if refreshed.DailyBonusClaimed != state.DailyBonusClaimed {
		log.Debug(LogMsgBonusFlagRederived, "claimed", refreshed.DailyBonusClaimed, "last_claim", lastClaim)
	}
	return refreshed, nil
}

// Save writes the game state
func (r *Repository) Save(ctx context.Context, state domain.GameState) error {
	encoded, err := encode(state)
	if err != nil {
		return err
	}
	if err := store.Set(ctx, r.store, domain.StorageKeyGameState, encoded); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveStateFailed, err)
	}
	return nil
}

// SaveClaim writes the game state and the claim date in one atomic write
func (r *Repository) SaveClaim(ctx context.Context, state domain.GameState, claimDate string) error {
	encoded, err := encode(state)
	if err != nil {
		return err
	}
	err = r.store.SetMany(ctx, map[string]string{
		domain.StorageKeyGameState:      encoded,
		domain.StorageKeyLastDailyBonus: claimDate,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveStateFailed, err)
	}
	return nil
}

// LastBonusDate returns the stored claim date, or "" when the bonus was never claimed
func (r *Repository) LastBonusDate(ctx context.Context) (string, error) {
	v, err := r.store.Get(ctx, domain.StorageKeyLastDailyBonus)
	if errors.Is(err, store.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgLoadClaimFailed, err)
	}
	return v, nil
}

// Reset deletes the saved game and the claim date
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.store.Delete(ctx, domain.StorageKeyGameState, domain.StorageKeyLastDailyBonus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgResetStateFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgWalletReset)
	return nil
}

func encode(state domain.GameState) (string, error) {
	if state.Achievements == nil {
		state.Achievements = []string{}
	}
	s, err := json.MarshalToString(state)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrMsgEncodeFailed, err)
	}
	return s, nil
}
