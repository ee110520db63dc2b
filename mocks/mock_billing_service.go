package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
)

// MockBillingService is a mock implementation of service.BillingService.
type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) PreviewBill(ctx context.Context, input service.PreviewBillInput) (*service.BillPreview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BillPreview), args.Error(1)
}

func (m *MockBillingService) CreateBill(ctx context.Context, input service.CreateBillInput) (*service.BillResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BillResult), args.Error(1)
}

func (m *MockBillingService) SearchBill(ctx context.Context, billNumber int64) (*domain.Bill, error) {
	args := m.Called(ctx, billNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillingService) UpdateBill(ctx context.Context, billNumber int64, input service.UpdateBillInput) (*domain.Bill, error) {
	args := m.Called(ctx, billNumber, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillingService) DeleteBill(ctx context.Context, billNumber int64, removeFromTurnover bool) error {
	args := m.Called(ctx, billNumber, removeFromTurnover)
	return args.Error(0)
}

func (m *MockBillingService) ListBills(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error) {
	args := m.Called(ctx, from, to, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Bill), args.Int(1), args.Error(2)
}

func (m *MockBillingService) LookupCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
