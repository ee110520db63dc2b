package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
)

// MockVoucherService is a mock implementation of service.VoucherService.
type MockVoucherService struct {
	mock.Mock
}

func (m *MockVoucherService) CreateVoucher(ctx context.Context, input service.CreateVoucherInput) (*domain.PurchaseVoucher, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseVoucher), args.Error(1)
}

func (m *MockVoucherService) GetVoucher(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseVoucher), args.Error(1)
}
