package game

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// MockWallet is a testify mock of repository.Wallet
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Load(ctx context.Context, now time.Time) (domain.GameState, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(domain.GameState), args.Error(1)
}

func (m *MockWallet) Save(ctx context.Context, state domain.GameState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockWallet) SaveClaim(ctx context.Context, state domain.GameState, claimDate string) error {
	args := m.Called(ctx, state, claimDate)
	return args.Error(0)
}

func (m *MockWallet) LastBonusDate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockWallet) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
