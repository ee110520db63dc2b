package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

type turnoverRepo struct {
	db *sqlx.DB
}

// NewTurnoverRepo creates a new PostgreSQL-backed TurnoverRepository.
func NewTurnoverRepo(db *sqlx.DB) port.TurnoverRepository {
	return &turnoverRepo{db: db}
}

func (r *turnoverRepo) Range(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error) {
	var entries []domain.TurnoverEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM daily_turnover
		WHERE day >= $1 AND day < $2
		ORDER BY day`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("turnoverRepo.Range: %w", err)
	}
	return entries, nil
}
