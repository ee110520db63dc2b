package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
)

// MockRateService is a mock implementation of service.RateService.
type MockRateService struct {
	mock.Mock
}

func (m *MockRateService) GetRate(ctx context.Context, metal domain.MetalType) (decimal.Decimal, error) {
	args := m.Called(ctx, metal)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateService) SetRate(ctx context.Context, metal domain.MetalType, input service.SetRateInput) (*domain.Rate, error) {
	args := m.Called(ctx, metal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) ToggleLock(ctx context.Context, metal domain.MetalType) (*domain.Rate, error) {
	args := m.Called(ctx, metal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateService) History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error) {
	args := m.Called(ctx, metal, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RateHistoryEntry), args.Error(1)
}
