package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/service"
)

// MockOTPService is a mock implementation of service.OTPService.
type MockOTPService struct {
	mock.Mock
}

func (m *MockOTPService) Issue(ctx context.Context, input service.SendOTPInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockOTPService) Verify(ctx context.Context, input service.VerifyOTPInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}
