package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Turnover(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnoverEntry), args.Error(1)
}

func (m *MockReportService) BillRegister(ctx context.Context, from, to time.Time) ([]domain.Bill, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}
