package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract exercises the behaviour every backend must share
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := s.Get(ctx, "spinSurviveGameState")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("set many then get", func(t *testing.T) {
		require.NoError(t, s.SetMany(ctx, map[string]string{
			"spinSurviveGameState": `{"coins":1450}`,
			"lastDailyBonus":       "Sat Oct 17 2026",
		}))

		v, err := s.Get(ctx, "spinSurviveGameState")
		require.NoError(t, err)
		assert.Equal(t, `{"coins":1450}`, v)

		v, err = s.Get(ctx, "lastDailyBonus")
		require.NoError(t, err)
		assert.Equal(t, "Sat Oct 17 2026", v)
	})

	t.Run("overwrite single key", func(t *testing.T) {
		require.NoError(t, Set(ctx, s, "spinSurviveGameState", `{"coins":1400}`))
		v, err := s.Get(ctx, "spinSurviveGameState")
		require.NoError(t, err)
		assert.Equal(t, `{"coins":1400}`, v)

		other, err := s.Get(ctx, "lastDailyBonus")
		require.NoError(t, err)
		assert.Equal(t, "Sat Oct 17 2026", other, "other keys untouched")
	})

	t.Run("empty write is a no-op", func(t *testing.T) {
		assert.NoError(t, s.SetMany(ctx, map[string]string{}))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "spinSurviveGameState", "lastDailyBonus", "neverWritten"))
		_, err := s.Get(ctx, "spinSurviveGameState")
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = s.Get(ctx, "lastDailyBonus")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, s.Ping(ctx))
	})
}
