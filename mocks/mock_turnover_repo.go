package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"jewelpos/internal/domain"
)

// MockTurnoverRepo is a mock implementation of port.TurnoverRepository.
type MockTurnoverRepo struct {
	mock.Mock
}

func (m *MockTurnoverRepo) Range(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TurnoverEntry), args.Error(1)
}
