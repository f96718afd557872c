package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
	"github.com/osse101/SpinSurvive_Go/internal/utils"
)

func syms(s ...domain.Symbol) []domain.Symbol { return s }

func TestCalculatePayout_ThreeOfAKind(t *testing.T) {
	expected := map[domain.Symbol]int{
		domain.SymbolCherry: 100,
		domain.SymbolLemon:  150,
		domain.SymbolOrange: 200,
		domain.SymbolGrape:  250,
		domain.SymbolBell:   300,
		domain.SymbolGem:    500,
		domain.SymbolStar:   750,
		domain.SymbolClover: 1000,
	}

	for _, s := range domain.Symbols {
		t.Run(string(s), func(t *testing.T) {
			got, err := CalculatePayout(syms(s, s, s))
			require.NoError(t, err)
			assert.Equal(t, expected[s], got)
		})
	}
}

func TestCalculatePayout(t *testing.T) {
	tests := []struct {
		name    string
		symbols []domain.Symbol
		want    int
	}{
		{"pair first two", syms(domain.SymbolCherry, domain.SymbolCherry, domain.SymbolLemon), 25},
		{"pair last two", syms(domain.SymbolLemon, domain.SymbolBell, domain.SymbolBell), 25},
		{"pair outer", syms(domain.SymbolGrape, domain.SymbolOrange, domain.SymbolGrape), 25},
		{"pair of gems beats gem consolation", syms(domain.SymbolGem, domain.SymbolGem, domain.SymbolLemon), 25},
		{"pair with clover", syms(domain.SymbolCherry, domain.SymbolCherry, domain.SymbolClover), 25},
		{"distinct no special", syms(domain.SymbolLemon, domain.SymbolOrange, domain.SymbolGrape), 0},
		{"gem", syms(domain.SymbolGem, domain.SymbolLemon, domain.SymbolOrange), 10},
		{"gem beats star and clover", syms(domain.SymbolClover, domain.SymbolStar, domain.SymbolGem), 10},
		{"star", syms(domain.SymbolCherry, domain.SymbolStar, domain.SymbolBell), 15},
		{"star beats clover", syms(domain.SymbolClover, domain.SymbolCherry, domain.SymbolStar), 15},
		{"clover", syms(domain.SymbolLemon, domain.SymbolGrape, domain.SymbolClover), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculatePayout(tt.symbols)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePayout_Deterministic(t *testing.T) {
	for _, a := range domain.Symbols {
		for _, b := range domain.Symbols {
			for _, c := range domain.Symbols {
				first, err := CalculatePayout(syms(a, b, c))
				require.NoError(t, err)
				second, err := CalculatePayout(syms(a, b, c))
				require.NoError(t, err)
				assert.Equal(t, first, second)
				assert.GreaterOrEqual(t, first, 0)
			}
		}
	}
}

func TestCalculatePayout_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		symbols []domain.Symbol
		errMsg  string
	}{
		{"too few", syms(domain.SymbolGem, domain.SymbolGem), "expected 3 symbols, got 2"},
		{"too many", syms(domain.SymbolGem, domain.SymbolGem, domain.SymbolGem, domain.SymbolGem), "expected 3 symbols, got 4"},
		{"empty", nil, "expected 3 symbols, got 0"},
		{"unknown symbol", syms(domain.SymbolGem, "seven", domain.SymbolGem), `unknown symbol "seven"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CalculatePayout(tt.symbols)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidOutcome)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeThreeOfAKind, Classify(syms(domain.SymbolBell, domain.SymbolBell, domain.SymbolBell), 300))
	assert.Equal(t, OutcomeTwoOfAKind, Classify(syms(domain.SymbolBell, domain.SymbolBell, domain.SymbolGem), 25))
	assert.Equal(t, OutcomeSpecial, Classify(syms(domain.SymbolLemon, domain.SymbolBell, domain.SymbolGem), 10))
	assert.Equal(t, OutcomeLoss, Classify(syms(domain.SymbolLemon, domain.SymbolBell, domain.SymbolGrape), 0))
}

func TestStreakMultiplier(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 3},
		{8, 3},
		{9, 4},
		{-1, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakMultiplier(tt.streak), "streak %d", tt.streak)
	}
}

func TestNextStreak(t *testing.T) {
	assert.Equal(t, 0, NextStreak(7, 0))
	assert.Equal(t, 0, NextStreak(0, 0))
	assert.Equal(t, 8, NextStreak(7, 10))
	assert.Equal(t, 1, NextStreak(0, 25))
}

func TestReels_Spin(t *testing.T) {
	t.Run("maps draws onto the alphabet in order", func(t *testing.T) {
		reels := NewReels(utils.NewSequence(0, 5, 7))
		assert.Equal(t, syms(domain.SymbolCherry, domain.SymbolGem, domain.SymbolClover), reels.Spin())
	})

	t.Run("always yields valid symbols", func(t *testing.T) {
		reels := NewReels(utils.NewSequence(3, 11, 100, -2))
		for i := 0; i < 20; i++ {
			out := reels.Spin()
			require.Len(t, out, domain.ReelCount)
			_, err := CalculatePayout(out)
			assert.NoError(t, err)
		}
	})
}

func TestBuildPaytable(t *testing.T) {
	table := BuildPaytable()

	require.Len(t, table.ThreeOfAKind, len(domain.Symbols))
	assert.Equal(t, domain.SymbolCherry, table.ThreeOfAKind[0].Symbol)
	assert.Equal(t, "Cherry", table.ThreeOfAKind[0].DisplayName)
	assert.Equal(t, 1000, table.ThreeOfAKind[7].Payout)
	assert.Equal(t, 25, table.TwoOfAKind)
	require.Len(t, table.SpecialSymbols, 3)
	assert.Equal(t, domain.SymbolGem, table.SpecialSymbols[0].Symbol)
	assert.Equal(t, 50, table.SpinCost)
	assert.Equal(t, 100, table.DoubleOrNothingThreshold)
	assert.Equal(t, 500, table.BigWinnerThreshold)
	assert.Equal(t, 3, table.StreakStep)
}
