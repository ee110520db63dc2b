package port

import (
	"context"
	"time"

	"jewelpos/internal/domain"
)

// BillRepository defines the contract for sales bill persistence.
//
// Create assigns the server-side bill number, inserts the bill row, its items
// and the day's turnover bump in a single transaction, so a half-written bill
// can never be observed. GetByNumber returns the bill with its items loaded.
// Delete removes items then the bill; removeFromTurnover controls whether the
// cached daily aggregate is reversed in the same transaction.
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByNumber(ctx context.Context, billNumber int64) (*domain.Bill, error)
	UpdateHeader(ctx context.Context, bill *domain.Bill) error
	Delete(ctx context.Context, billNumber int64, removeFromTurnover bool) error
	List(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error)
}
