package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockRateRepo is a mock implementation of port.RateRepository.
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) GetByMetal(ctx context.Context, metal domain.MetalType) (*domain.Rate, error) {
	args := m.Called(ctx, metal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepo) List(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepo) Set(ctx context.Context, metal domain.MetalType, ratePerGram decimal.Decimal) (*domain.Rate, error) {
	args := m.Called(ctx, metal, ratePerGram)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepo) SetLocked(ctx context.Context, metal domain.MetalType, locked bool) (*domain.Rate, error) {
	args := m.Called(ctx, metal, locked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepo) History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error) {
	args := m.Called(ctx, metal, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistoryEntry), args.Error(1)
}
