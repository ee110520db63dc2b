package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
)

type voucherRepo struct {
	db *sqlx.DB
}

// NewVoucherRepo creates a new PostgreSQL-backed VoucherRepository.
func NewVoucherRepo(db *sqlx.DB) port.VoucherRepository {
	return &voucherRepo{db: db}
}

// Create inserts the voucher and its items in one transaction, with the
// voucher number assigned from voucher_number_seq inside the insert.
func (r *voucherRepo) Create(ctx context.Context, voucher *domain.PurchaseVoucher) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("voucherRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	voucher.ID = uuid.New()
	now := time.Now().UTC()
	voucher.CreatedAt = now

	err = tx.GetContext(ctx, &voucher.VoucherNumber, `
		INSERT INTO purchase_vouchers (
			id, voucher_number, customer_id, customer_name, customer_phone,
			customer_address, pan_aadhaar, total_weight, total_amount,
			payment_method, utr_number, notes, voucher_date, created_at
		) VALUES (
			$1, nextval('voucher_number_seq'), $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13
		)
		RETURNING voucher_number`,
		voucher.ID, voucher.CustomerID, voucher.CustomerName,
		voucher.CustomerPhone, voucher.CustomerAddress, voucher.PANAadhaar,
		voucher.TotalWeight, voucher.TotalAmount, voucher.PaymentMethod,
		voucher.UTRNumber, voucher.Notes, voucher.VoucherDate, now)
	if err != nil {
		return fmt.Errorf("voucherRepo.Create voucher: %w", err)
	}

	for i := range voucher.Items {
		item := &voucher.Items[i]
		item.ID = uuid.New()
		item.VoucherID = voucher.ID
		item.Position = i
		item.CreatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO purchase_voucher_items (
				id, voucher_id, position, item_description, metal_type, purity,
				net_weight, rate_per_gram, total_amount, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.VoucherID, item.Position, item.ItemDescription,
			item.MetalType, item.Purity, item.NetWeight, item.RatePerGram,
			item.TotalAmount, now)
		if err != nil {
			return fmt.Errorf("voucherRepo.Create item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("voucherRepo.Create commit: %w", err)
	}
	return nil
}

func (r *voucherRepo) GetByNumber(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error) {
	var voucher domain.PurchaseVoucher
	err := r.db.GetContext(ctx, &voucher,
		"SELECT * FROM purchase_vouchers WHERE voucher_number = $1", voucherNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("voucherRepo.GetByNumber: %w", err)
	}

	err = r.db.SelectContext(ctx, &voucher.Items,
		"SELECT * FROM purchase_voucher_items WHERE voucher_id = $1 ORDER BY position",
		voucher.ID)
	if err != nil {
		return nil, fmt.Errorf("voucherRepo.GetByNumber items: %w", err)
	}
	return &voucher, nil
}
