package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockOTPRepo is a mock implementation of port.OTPRepository.
type MockOTPRepo struct {
	mock.Mock
}

func (m *MockOTPRepo) Replace(ctx context.Context, otp *domain.EmailOTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepo) GetActive(ctx context.Context, email string) (*domain.EmailOTP, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailOTP), args.Error(1)
}

func (m *MockOTPRepo) Consume(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
