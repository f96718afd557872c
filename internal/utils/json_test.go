package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	t.Run("loads valid document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "state.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"coins": 1000, "winStreak": 2}`), 0600))

		var got struct {
			Coins     int `json:"coins"`
			WinStreak int `json:"winStreak"`
		}
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, 1000, got.Coins)
		assert.Equal(t, 2, got.WinStreak)
	})

	t.Run("missing file wraps os.ErrNotExist", func(t *testing.T) {
		var got map[string]any
		err := LoadJSON(filepath.Join(t.TempDir(), "missing.json"), &got)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"coins":`), 0600))

		var got map[string]any
		err := LoadJSON(path, &got)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

func TestSaveJSON(t *testing.T) {
	t.Run("writes indented document with private permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "store.json")

		require.NoError(t, SaveJSON(path, map[string]any{"name": "test", "value": 42}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "\n")
		assert.Contains(t, string(content), `"name"`)

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "store.json")
		require.NoError(t, SaveJSON(path, map[string]int{"a": 1}))
		require.NoError(t, SaveJSON(path, map[string]int{"a": 2}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("parent is a regular file", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

		err := SaveJSON(filepath.Join(blocker, "store.json"), map[string]string{"k": "v"})
		assert.Error(t, err)
	})

	t.Run("non-serializable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "invalid.json"), map[string]any{"ch": make(chan int)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.json")
	type doc struct {
		Coins        int      `json:"coins"`
		Achievements []string `json:"achievements"`
	}
	original := doc{Coins: 1450, Achievements: []string{"Big Winner"}}

	require.NoError(t, SaveJSON(path, original))

	var loaded doc
	require.NoError(t, LoadJSON(path, &loaded))
	assert.Equal(t, original, loaded)
}
