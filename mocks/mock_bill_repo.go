package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockBillRepo is a mock implementation of port.BillRepository.
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepo) GetByNumber(ctx context.Context, billNumber int64) (*domain.Bill, error) {
	args := m.Called(ctx, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepo) UpdateHeader(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepo) Delete(ctx context.Context, billNumber int64, removeFromTurnover bool) error {
	args := m.Called(ctx, billNumber, removeFromTurnover)
	return args.Error(0)
}

func (m *MockBillRepo) List(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error) {
	args := m.Called(ctx, from, to, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Int(1), args.Error(2)
}
