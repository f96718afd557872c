// Package game runs a single player's session: it owns the in-memory GameState,
// settles every player action through the pure rule packages, persists the result
// and publishes events.
package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/SpinSurvive_Go/internal/bonus"
	"github.com/osse101/SpinSurvive_Go/internal/concurrency"
	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/event"
	"github.com/osse101/SpinSurvive_Go/internal/gamble"
	"github.com/osse101/SpinSurvive_Go/internal/logger"
	"github.com/osse101/SpinSurvive_Go/internal/repository"
	"github.com/osse101/SpinSurvive_Go/internal/slots"
	"github.com/osse101/SpinSurvive_Go/internal/stats"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

// Service defines the session operations exposed to the HTTP layer
type Service interface {
	State(ctx context.Context) (domain.GameState, error)
	Spin(ctx context.Context) (*domain.SpinReport, error)
	ResolveDouble(ctx context.Context, spinNumber int, guess domain.CardColor) (*domain.DoubleReport, error)
	SkipDouble(ctx context.Context, spinNumber int) (domain.GameState, error)
	PendingOffer() *domain.DoubleOffer
	ClaimDailyBonus(ctx context.Context) (*domain.BonusReport, error)
	RefreshDailyBonus(ctx context.Context) (bool, error)
	NextDailyReset() time.Time
	Stats(ctx context.Context) (*domain.StatsSummary, error)
	Paytable() domain.Paytable
	Reset(ctx context.Context) (domain.GameState, error)
}

// Randomness groups the independent random sources the session draws from
type Randomness struct {
	Reels utils.RandomSource
	Deck  utils.RandomSource
	Bonus utils.RandomSource
}

// DefaultRandomness returns one shared source for every draw
func DefaultRandomness(src utils.RandomSource) Randomness {
	return Randomness{Reels: src, Deck: src, Bonus: src}
}

type service struct {
	wallet   repository.Wallet
	bus      event.Bus
	gate     *cooldown.Daily
	reels    *slots.Reels
	deck     *gamble.Deck
	bonusRNG utils.RandomSource
	now      func() time.Time
	actions  *concurrency.LockManager

	mu      sync.Mutex
	loaded  bool
	state   domain.GameState
	pending *domain.DoubleOffer
}

// NewService creates the session service. A nil clock means time.Now; a nil bus disables events.
func NewService(wallet repository.Wallet, bus event.Bus, gate *cooldown.Daily, rng Randomness, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	if gate == nil {
		gate = cooldown.NewDaily(nil)
	}
	return &service{
		wallet:   wallet,
		bus:      bus,
		gate:     gate,
		reels:    slots.NewReels(rng.Reels),
		deck:     gamble.NewDeck(rng.Deck),
		bonusRNG: rng.Bonus,
		now:      clock,
		actions:  concurrency.NewLockManager(),
	}
}

// ensureLoaded loads the saved session on first use. Caller must hold s.mu.
func (s *service) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	state, err := s.wallet.Load(ctx, s.now())
	if err != nil {
		logger.FromContext(ctx).Error(ErrMsgLoadFailed, "error", err)
		return fmt.Errorf("%s: %w", ErrMsgLoadFailed, err)
	}
	s.state = state
	s.loaded = true
	logger.FromContext(ctx).Info(LogMsgSessionLoaded,
		"coins", state.Coins,
		"total_spins", state.TotalSpins,
		"daily_bonus_claimed", state.DailyBonusClaimed)
	return nil
}

// State returns a copy of the current GameState, loading it on first use
func (s *service) State(ctx context.Context) (domain.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return domain.GameState{}, err
	}
	return s.state.Clone(), nil
}

// Spin draws three symbols and settles them.
// Any unresolved double-or-nothing offer is discarded first.
func (s *service) Spin(ctx context.Context) (*domain.SpinReport, error) {
	var report *domain.SpinReport
	var unlocked []string
	var totalSpins int

	err := s.actions.TryRun(domain.ActionSpin, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		log := logger.FromContext(ctx)
		if err := s.ensureLoaded(ctx); err != nil {
			return err
		}

		next, r, err := slots.SettleSpin(s.state, s.reels.Spin())
		if err != nil {
			log.Info(LogMsgSpinRejected, "reason", err, "coins", s.state.Coins)
			return err
		}

		if err := s.wallet.Save(ctx, next); err != nil {
			log.Error(LogMsgSaveFailed, "action", domain.ActionSpin, "error", err)
			return err
		}

		if s.pending != nil {
			log.Debug(LogMsgOfferDiscarded, "stake", s.pending.Stake)
		}
		s.state = next
		s.pending = nil
		if r.DoubleOrNothing {
			s.pending = &domain.DoubleOffer{Stake: r.DoubleStake, SpinNumber: next.TotalSpins}
		}

		log.Info(LogMsgSpinSettled,
			"symbols", r.Symbols,
			"outcome", slots.Classify(r.Symbols, r.BasePayout),
			"base_payout", r.BasePayout,
			"multiplier", r.Multiplier,
			"final_payout", r.FinalPayout,
			"coins", next.Coins,
			"win_streak", next.WinStreak)

		report = r
		unlocked = r.AchievementsUnlocked
		totalSpins = next.TotalSpins
		return nil
	})
	if err != nil {
		return nil, err
	}

	at := s.now()
	s.publish(ctx, event.NewSpinSettledEvent(report, at))
	for _, a := range unlocked {
		logger.FromContext(ctx).Info(LogMsgAchievementUnlocked, "achievement", a)
		s.publish(ctx, event.NewAchievementUnlockedEvent(a, totalSpins, at))
	}
	return report, nil
}

// ResolveDouble settles the pending double-or-nothing offer against a drawn card.
// spinNumber must name the spin that opened the offer; an invalid guess leaves
// the offer open.
func (s *service) ResolveDouble(ctx context.Context, spinNumber int, guess domain.CardColor) (*domain.DoubleReport, error) {
	var report *domain.DoubleReport

	err := s.actions.TryRun(domain.ActionDouble, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		log := logger.FromContext(ctx)
		if err := s.ensureLoaded(ctx); err != nil {
			return err
		}
		if err := s.checkOffer(spinNumber); err != nil {
			return err
		}
		if !guess.IsValid() {
			return fmt.Errorf("%w: "+gamble.ErrFmtGuess, domain.ErrInvalidGuess, guess)
		}

		next, r, err := gamble.SettleDoubleOrNothing(s.state, s.pending.Stake, guess, s.deck.Draw())
		if err != nil {
			return err
		}

		if err := s.wallet.Save(ctx, next); err != nil {
			log.Error(LogMsgSaveFailed, "action", domain.ActionDouble, "error", err)
			return err
		}

		s.state = next
		s.pending = nil

		log.Info(LogMsgDoubleResolved,
			"stake", r.Stake,
			"guess", r.Guess,
			"card", r.Card.String(),
			"won", r.Won,
			"coins", next.Coins)

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewDoubleResolvedEvent(report, s.now()))
	return report, nil
}

// checkOffer reports ErrNoDoubleOffer unless an offer is open for spinNumber.
// Caller must hold s.mu.
func (s *service) checkOffer(spinNumber int) error {
	if s.pending == nil {
		return domain.ErrNoDoubleOffer
	}
	if s.pending.SpinNumber != spinNumber {
		return fmt.Errorf("%w: "+ErrFmtStaleOffer, domain.ErrNoDoubleOffer, spinNumber, s.pending.SpinNumber)
	}
	return nil
}

// SkipDouble keeps the spin winnings and closes the offer opened by spinNumber
func (s *service) SkipDouble(ctx context.Context, spinNumber int) (domain.GameState, error) {
	var state domain.GameState
	var stake int

	err := s.actions.TryRun(domain.ActionDouble, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.ensureLoaded(ctx); err != nil {
			return err
		}
		if err := s.checkOffer(spinNumber); err != nil {
			return err
		}

		stake = s.pending.Stake
		s.pending = nil
		state = s.state.Clone()
		logger.FromContext(ctx).Info(LogMsgDoubleSkipped, "stake", stake, "coins", state.Coins)
		return nil
	})
	if err != nil {
		return domain.GameState{}, err
	}

	s.publish(ctx, event.NewDoubleSkippedEvent(stake, state.Coins, s.now()))
	return state, nil
}

// PendingOffer returns a copy of the open double-or-nothing offer, or nil
func (s *service) PendingOffer() *domain.DoubleOffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil
	}
	offer := *s.pending
	return &offer
}

// ClaimDailyBonus credits a random bonus once per calendar day.
// The new state and the claim date are written together.
func (s *service) ClaimDailyBonus(ctx context.Context) (*domain.BonusReport, error) {
	var report *domain.BonusReport

	err := s.actions.TryRun(domain.ActionDailyBonus, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		log := logger.FromContext(ctx)
		if err := s.ensureLoaded(ctx); err != nil {
			return err
		}

		lastClaim, err := s.wallet.LastBonusDate(ctx)
		if err != nil {
			return err
		}

		now := s.now()
		next, r, err := bonus.ClaimDailyBonus(s.gate, s.state, lastClaim, now, bonus.Roll(s.bonusRNG))
		if err != nil {
			log.Info(LogMsgBonusRejected, "reason", err, "last_claim", lastClaim)
			s.syncBonusFlag(ctx, lastClaim, now)
			return err
		}

		if err := s.wallet.SaveClaim(ctx, next, r.ClaimDate); err != nil {
			log.Error(LogMsgSaveFailed, "action", domain.ActionDailyBonus, "error", err)
			return err
		}

		s.state = next
		log.Info(LogMsgBonusClaimed, "amount", r.Amount, "coins", next.Coins, "claim_date", r.ClaimDate)

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, event.NewDailyBonusClaimedEvent(report, s.now()))
	return report, nil
}

// syncBonusFlag re-derives the daily flag after a rejected claim and persists it
// when it moved. A failed save leaves s.state as it was. Caller must hold s.mu.
func (s *service) syncBonusFlag(ctx context.Context, lastClaim string, now time.Time) {
	next := bonus.RefreshEligibility(s.gate, s.state, lastClaim, now)
	if next.DailyBonusClaimed == s.state.DailyBonusClaimed {
		return
	}
	if err := s.wallet.Save(ctx, next); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "action", domain.ActionDailyBonus, "error", err)
		return
	}
	s.state = next
}

// RefreshDailyBonus re-derives the daily bonus flag for a running session.
// It returns true when the bonus became available again.
func (s *service) RefreshDailyBonus(ctx context.Context) (bool, error) {
	var reopened bool
	var coins int
	var lastClaim string

	err := func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.loaded {
			return s.ensureLoaded(ctx)
		}

		var err error
		lastClaim, err = s.wallet.LastBonusDate(ctx)
		if err != nil {
			return err
		}

		next := bonus.RefreshEligibility(s.gate, s.state, lastClaim, s.now())
		if next.DailyBonusClaimed == s.state.DailyBonusClaimed {
			return nil
		}
		if err := s.wallet.Save(ctx, next); err != nil {
			logger.FromContext(ctx).Error(LogMsgSaveFailed, "action", "daily_refresh", "error", err)
			return err
		}
		reopened = s.state.DailyBonusClaimed && !next.DailyBonusClaimed
		s.state = next
		coins = next.Coins
		return nil
	}()
	if err != nil {
		return false, err
	}

	if reopened {
		logger.FromContext(ctx).Info(LogMsgBonusReopened, "last_claim", lastClaim)
		s.publish(ctx, event.NewDailyBonusResetEvent(coins, lastClaim, s.now()))
	}
	return reopened, nil
}

// NextDailyReset returns the next calendar-day boundary
func (s *service) NextDailyReset() time.Time {
	return s.gate.NextReset(s.now())
}

// Stats returns the derived stats panel
func (s *service) Stats(ctx context.Context) (*domain.StatsSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	summary := stats.Summarize(s.state)
	summary.DoubleOfferPending = s.pending != nil
	return &summary, nil
}

// Paytable returns the payout rules for display
func (s *service) Paytable() domain.Paytable {
	return slots.BuildPaytable()
}

// Reset wipes the saved game and starts over with the new-player defaults
func (s *service) Reset(ctx context.Context) (domain.GameState, error) {
	var state domain.GameState

	err := s.actions.TryRun(domain.ActionReset, func() error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if err := s.wallet.Reset(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgSaveFailed, "action", domain.ActionReset, "error", err)
			return err
		}

		s.state = domain.NewGameState()
		s.loaded = true
		s.pending = nil
		state = s.state.Clone()
		logger.FromContext(ctx).Info(LogMsgSessionReset)
		return nil
	})
	if err != nil {
		return domain.GameState{}, err
	}
	return state, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "event_type", evt.Type, "error", err)
	}
}
