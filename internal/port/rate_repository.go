package port

import (
	"context"

	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
)

// RateRepository defines the contract for metal rate persistence.
// Set appends a RateHistoryEntry in the same transaction as the upsert.
type RateRepository interface {
	GetByMetal(ctx context.Context, metal domain.MetalType) (*domain.Rate, error)
	List(ctx context.Context) ([]domain.Rate, error)
	Set(ctx context.Context, metal domain.MetalType, ratePerGram decimal.Decimal) (*domain.Rate, error)
	SetLocked(ctx context.Context, metal domain.MetalType, locked bool) (*domain.Rate, error)
	History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error)
}
