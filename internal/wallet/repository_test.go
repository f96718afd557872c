package wallet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinSurvive_Go/internal/cooldown"
	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/store"
	"github.com/osse101/SpinSurvive_Go/internal/validation"
)

var (
	today     = time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC)
	todayKey  = "Sat Oct 17 2026"
	yesterday = "Fri Oct 16 2026"
)

func newTestRepo() (*Repository, *store.MemoryStore) {
	s := store.NewMemoryStore()
	return NewRepository(s, cooldown.NewDaily(time.UTC)), s
}

func TestLoad_NewPlayerDefaults(t *testing.T) {
	repo, _ := newTestRepo()

	state, err := repo.Load(context.Background(), today)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, state.Coins)
	assert.Equal(t, 0, state.TotalSpins)
	assert.Equal(t, 0, state.WinStreak)
	assert.False(t, state.DailyBonusClaimed)
	assert.NotNil(t, state.Achievements)
	assert.Empty(t, state.Achievements)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()

	saved := domain.GameState{
		Coins:         2350,
		TotalSpins:    41,
		WinStreak:     5,
		LastWinAmount: 300,
		Achievements:  []string{domain.AchievementBigWinner},
	}
	require.NoError(t, repo.Save(ctx, saved))

	raw, err := s.Get(ctx, domain.StorageKeyGameState)
	require.NoError(t, err)
	assert.Contains(t, raw, `"totalSpins":41`)
	assert.Contains(t, raw, `"lastWinAmount":300`)

	loaded, err := repo.Load(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestLoad_BrowserSaveFormat(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()

	require.NoError(t, s.SetMany(ctx, map[string]string{
		domain.StorageKeyGameState: `{"coins":720,"totalSpins":9,"winStreak":0,"lastWinAmount":0,` +
			`"dailyBonusClaimed":true,"achievements":["Big Winner","Big Winner"]}`,
		domain.StorageKeyLastDailyBonus: yesterday,
	}))

	state, err := repo.Load(ctx, today)

	require.NoError(t, err)
	assert.Equal(t, 720, state.Coins)
	assert.Equal(t, []string{domain.AchievementBigWinner}, state.Achievements, "duplicates collapse")
	assert.False(t, state.DailyBonusClaimed, "yesterday's claim re-opens the bonus")
}

func TestLoad_MissingFieldsKeepDefaults(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, s, domain.StorageKeyGameState, `{"totalSpins":3}`))

	state, err := repo.Load(ctx, today)

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, state.Coins)
	assert.Equal(t, 3, state.TotalSpins)
	assert.Empty(t, state.Achievements)
}

func TestLoad_BonusFlagRederived(t *testing.T) {
	tests := []struct {
		name       string
		storedFlag bool
		lastClaim  string
		expected   bool
	}{
		{"claimed today stays claimed", true, todayKey, true},
		{"flag false but claimed today", false, todayKey, true},
		{"claimed yesterday re-opens", true, yesterday, false},
		{"iso date today", false, "2026-10-17", true},
		{"garbage date counts as unclaimed", true, "not a date", false},
		{"never claimed", true, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newTestRepo()
			ctx := context.Background()

			state := domain.NewGameState()
			state.DailyBonusClaimed = tt.storedFlag
			require.NoError(t, repo.Save(ctx, state))
			if tt.lastClaim != "" {
				require.NoError(t, store.Set(ctx, s, domain.StorageKeyLastDailyBonus, tt.lastClaim))
			}

			loaded, err := repo.Load(ctx, today)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, loaded.DailyBonusClaimed)
		})
	}
}

func TestLoad_CorruptState(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, s, domain.StorageKeyGameState, `{"coins":`))

	_, err := repo.Load(ctx, today)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgDecodeFailed)
}

func TestLoad_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"negative coins", `{"coins":-100,"totalSpins":2}`},
		{"wrong type", `{"coins":"lots"}`},
		{"achievement not a string", `{"achievements":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, s := newTestRepo()
			ctx := context.Background()
			require.NoError(t, store.Set(ctx, s, domain.StorageKeyGameState, tt.raw))

			_, err := repo.Load(ctx, today)

			require.Error(t, err)
			assert.ErrorIs(t, err, validation.ErrSchemaViolation)
			assert.Contains(t, err.Error(), ErrMsgDecodeFailed)
		})
	}
}

func TestSaveClaim_WritesBothKeys(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	state := domain.NewGameState()
	state.Coins = 1400
	state.DailyBonusClaimed = true
	require.NoError(t, repo.SaveClaim(ctx, state, todayKey))

	last, err := repo.LastBonusDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, todayKey, last)

	loaded, err := repo.Load(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 1400, loaded.Coins)
	assert.True(t, loaded.DailyBonusClaimed)
}

func TestLastBonusDate_NeverClaimed(t *testing.T) {
	repo, _ := newTestRepo()

	last, err := repo.LastBonusDate(context.Background())

	require.NoError(t, err)
	assert.Empty(t, last)
}

func TestReset(t *testing.T) {
	repo, s := newTestRepo()
	ctx := context.Background()

	state := domain.NewGameState()
	state.Coins = 9000
	require.NoError(t, repo.SaveClaim(ctx, state, todayKey))

	require.NoError(t, repo.Reset(ctx))

	_, err := s.Get(ctx, domain.StorageKeyGameState)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Get(ctx, domain.StorageKeyLastDailyBonus)
	assert.ErrorIs(t, err, store.ErrNotFound)

	loaded, err := repo.Load(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStartingCoins, loaded.Coins)
}

func TestRepository_StoreErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("load", func(t *testing.T) {
		m := new(MockStore)
		m.On("Get", ctx, domain.StorageKeyGameState).Return("", boom)

		_, err := NewRepository(m, nil).Load(ctx, today)

		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), ErrMsgLoadStateFailed)
		m.AssertExpectations(t)
	})

	t.Run("load claim date", func(t *testing.T) {
		m := new(MockStore)
		m.On("Get", ctx, domain.StorageKeyGameState).Return("", store.ErrNotFound)
		m.On("Get", ctx, domain.StorageKeyLastDailyBonus).Return("", boom)

		_, err := NewRepository(m, nil).Load(ctx, today)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgLoadClaimFailed)
		m.AssertExpectations(t)
	})

	t.Run("save", func(t *testing.T) {
		m := new(MockStore)
		m.On("SetMany", ctx, mock.AnythingOfType("map[string]string")).Return(boom)

		err := NewRepository(m, nil).Save(ctx, domain.NewGameState())

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSaveStateFailed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("save claim is a single write", func(t *testing.T) {
		m := new(MockStore)
		m.On("SetMany", ctx, mock.MatchedBy(func(values map[string]string) bool {
			return len(values) == 2 && values[domain.StorageKeyLastDailyBonus] == todayKey
		})).Return(nil).Once()

		require.NoError(t, NewRepository(m, nil).SaveClaim(ctx, domain.NewGameState(), todayKey))
		m.AssertExpectations(t)
	})

	t.Run("reset", func(t *testing.T) {
		m := new(MockStore)
		m.On("Delete", ctx, []string{domain.StorageKeyGameState, domain.StorageKeyLastDailyBonus}).Return(boom)

		err := NewRepository(m, nil).Reset(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgResetStateFailed)
	})
}
