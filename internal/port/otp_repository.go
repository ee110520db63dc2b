package port

import (
	"context"

	"github.com/google/uuid"

	"jewelpos/internal/domain"
)

// OTPRepository defines the contract for one-time code persistence.
// Replace removes any prior codes for the email before inserting, keeping at
// most one active code per address.
type OTPRepository interface {
	Replace(ctx context.Context, otp *domain.EmailOTP) error
	GetActive(ctx context.Context, email string) (*domain.EmailOTP, error)
	Consume(ctx context.Context, id uuid.UUID) error
}
