package port

import (
	"context"

	"jewelpos/internal/domain"
)

// VoucherRepository defines the contract for purchase voucher persistence.
// Create assigns the server-side voucher number and inserts the voucher with
// its items in one transaction. There is no update or delete: vouchers are
// create-and-print records.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *domain.PurchaseVoucher) error
	GetByNumber(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error)
}
