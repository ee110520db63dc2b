package port

import (
	"context"

	"jewelpos/internal/domain"
)

// CustomerRepository defines the contract for the shared customer registry.
// Phone is the dedup key: UpsertByPhone overwrites every field of an existing
// row with the incoming values and fills in the row's ID either way.
type CustomerRepository interface {
	UpsertByPhone(ctx context.Context, customer *domain.Customer) error
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
}
