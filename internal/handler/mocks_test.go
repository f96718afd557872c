package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/SpinSurvive_Go/internal/domain"
)

// MockGameService mocks game.Service
type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) State(ctx context.Context) (domain.GameState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GameState), args.Error(1)
}

func (m *MockGameService) Spin(ctx context.Context) (*domain.SpinReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinReport), args.Error(1)
}

func (m *MockGameService) ResolveDouble(ctx context.Context, spinNumber int, guess domain.CardColor) (*domain.DoubleReport, error) {
	args := m.Called(ctx, spinNumber, guess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DoubleReport), args.Error(1)
}

func (m *MockGameService) SkipDouble(ctx context.Context, spinNumber int) (domain.GameState, error) {
	args := m.Called(ctx, spinNumber)
	return args.Get(0).(domain.GameState), args.Error(1)
}

func (m *MockGameService) PendingOffer() *domain.DoubleOffer {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.DoubleOffer)
}

func (m *MockGameService) ClaimDailyBonus(ctx context.Context) (*domain.BonusReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BonusReport), args.Error(1)
}

func (m *MockGameService) RefreshDailyBonus(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGameService) NextDailyReset() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func (m *MockGameService) Stats(ctx context.Context) (*domain.StatsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSummary), args.Error(1)
}

func (m *MockGameService) Paytable() domain.Paytable {
	args := m.Called()
	return args.Get(0).(domain.Paytable)
}

func (m *MockGameService) Reset(ctx context.Context) (domain.GameState, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.GameState), args.Error(1)
}

// MockPinger mocks the store readiness probe
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDailyTrigger mocks the daily reset worker
type MockDailyTrigger struct {
	mock.Mock
}

func (m *MockDailyTrigger) Trigger(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}
