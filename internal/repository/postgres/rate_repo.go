package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

type rateRepo struct {
	db *sqlx.DB
}

// NewRateRepo creates a new PostgreSQL-backed RateRepository.
func NewRateRepo(db *sqlx.DB) port.RateRepository {
	return &rateRepo{db: db}
}

func (r *rateRepo) GetByMetal(ctx context.Context, metal domain.MetalType) (*domain.Rate, error) {
	var rate domain.Rate
	err := r.db.GetContext(ctx, &rate, "SELECT * FROM rates WHERE metal_type = $1", metal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rateRepo.GetByMetal: %w", err)
	}
	return &rate, nil
}

func (r *rateRepo) List(ctx context.Context) ([]domain.Rate, error) {
	var rates []domain.Rate
	err := r.db.SelectContext(ctx, &rates, "SELECT * FROM rates ORDER BY metal_type")
	if err != nil {
		return nil, fmt.Errorf("rateRepo.List: %w", err)
	}
	return rates, nil
}

// Set upserts the active rate row and appends the history entry in one
// transaction, so the ledger can never miss an update.
func (r *rateRepo) Set(ctx context.Context, metal domain.MetalType, ratePerGram decimal.Decimal) (*domain.Rate, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("rateRepo.Set begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	var rate domain.Rate
	err = tx.GetContext(ctx, &rate, `
		INSERT INTO rates (id, metal_type, rate_per_gram, is_locked, updated_at)
		VALUES ($1, $2, $3, false, $4)
		ON CONFLICT (metal_type) DO UPDATE
		SET rate_per_gram = EXCLUDED.rate_per_gram, updated_at = EXCLUDED.updated_at
		RETURNING *`,
		uuid.New(), metal, ratePerGram, now)
	if err != nil {
		return nil, fmt.Errorf("rateRepo.Set upsert: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rate_history (id, metal_type, rate_per_gram, created_at)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), metal, ratePerGram, now)
	if err != nil {
		return nil, fmt.Errorf("rateRepo.Set history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("rateRepo.Set commit: %w", err)
	}
	return &rate, nil
}

func (r *rateRepo) SetLocked(ctx context.Context, metal domain.MetalType, locked bool) (*domain.Rate, error) {
	var rate domain.Rate
	err := r.db.GetContext(ctx, &rate, `
		UPDATE rates SET is_locked = $1, updated_at = $2
		WHERE metal_type = $3
		RETURNING *`,
		locked, time.Now().UTC(), metal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("rateRepo.SetLocked: %w", err)
	}
	return &rate, nil
}

func (r *rateRepo) History(ctx context.Context, metal domain.MetalType, limit int) ([]domain.RateHistoryEntry, error) {
	var entries []domain.RateHistoryEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM rate_history
		WHERE metal_type = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		metal, limit)
	if err != nil {
		return nil, fmt.Errorf("rateRepo.History: %w", err)
	}
	return entries, nil
}
