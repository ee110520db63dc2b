package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockVoucherRepo is a mock implementation of port.VoucherRepository.
type MockVoucherRepo struct {
	mock.Mock
}

func (m *MockVoucherRepo) Create(ctx context.Context, voucher *domain.PurchaseVoucher) error {
	args := m.Called(ctx, voucher)
	return args.Error(0)
}

func (m *MockVoucherRepo) GetByNumber(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error) {
	args := m.Called(ctx, voucherNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseVoucher), args.Error(1)
}
