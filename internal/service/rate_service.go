package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

var ten = decimal.NewFromInt(10)

// SetRateInput is the DTO for a rate update. The counter enters the rate per
// 10 grams, the way bullion prices are quoted; storage is per gram.
type SetRateInput struct {
	RatePer10Grams decimal.Decimal `json:"rate_per_10g" binding:"required"`
}

// RateService is the rate provider: current per-gram rates per metal with a
// cooperative lock guard and an append-only history.
type RateService interface {
	GetRate(ctx context.Context, metal domain.MetalType) (decimal.Decimal, error)
	ListRates(ctx context.Context) ([]domain.Rate, error)
	SetRate(ctx context.Context, metal domain.MetalType, input SetRateInput) (*domain.Rate, error)
	ToggleLock(ctx context.Context, metal domain.MetalType) (*domain.Rate, error)
	History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error)
}

type rateService struct {
	repo port.RateRepository
}

// NewRateService creates a new RateService.
func NewRateService(repo port.RateRepository) RateService {
	return &rateService{repo: repo}
}

// GetRate returns the stored per-gram rate, or zero when no rate row exists.
// Callers must treat zero as "no rate available" and warn the operator rather
// than silently charging nothing.
func (s *rateService) GetRate(ctx context.Context, metal domain.MetalType) (decimal.Decimal, error) {
	if !domain.ValidMetalTypes[metal] {
		return decimal.Zero, domain.ErrInvalidMetalType
	}
	rate, err := s.repo.GetByMetal(ctx, metal)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return rate.RatePerGram, nil
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.Rate, error) {
	return s.repo.List(ctx)
}

func (s *rateService) SetRate(ctx context.Context, metal domain.MetalType, input SetRateInput) (*domain.Rate, error) {
	if !domain.ValidMetalTypes[metal] {
		return nil, domain.ErrInvalidMetalType
	}
	if input.RatePer10Grams.LessThanOrEqual(decimal.Zero) {
		return nil, domain.NewValidationError("rate_per_10g", "must be greater than zero")
	}

	existing, err := s.repo.GetByMetal(ctx, metal)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsLocked {
		return nil, domain.ErrRateLocked
	}

	return s.repo.Set(ctx, metal, input.RatePer10Grams.Div(ten))
}

func (s *rateService) ToggleLock(ctx context.Context, metal domain.MetalType) (*domain.Rate, error) {
	if !domain.ValidMetalTypes[metal] {
		return nil, domain.ErrInvalidMetalType
	}
	existing, err := s.repo.GetByMetal(ctx, metal)
	if err != nil {
		return nil, err
	}
	return s.repo.SetLocked(ctx, metal, !existing.IsLocked)
}

func (s *rateService) History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error) {
	if !domain.ValidMetalTypes[metal] {
		return nil, domain.ErrInvalidMetalType
	}
	if limit <= 0 || limit > 500 {
		limit = 30
	}
	return s.repo.History(ctx, metal, limit)
}
