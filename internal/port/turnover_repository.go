package port

import (
	"context"
	"time"

	"jewelpos/internal/domain"
)

// TurnoverRepository reads the cached daily revenue aggregate. The aggregate
// is written transactionally by the bill repository, never directly.
type TurnoverRepository interface {
	Range(ctx context.Context, from, to time.Time) ([]domain.TurnoverEntry, error)
}
