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

type billRepo struct {
	db *sqlx.DB
}

// turnoverDay buckets a bill date into its daily_turnover key.
func turnoverDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}

// NewBillRepo creates a new PostgreSQL-backed BillRepository.
func NewBillRepo(db *sqlx.DB) port.BillRepository {
	return &billRepo{db: db}
}

// Create inserts the bill, its items and the day's turnover bump in a single
// transaction. The bill number comes from bill_number_seq inside the insert:
// assignment stays server-side and collision-free across terminals.
func (r *billRepo) Create(ctx context.Context, bill *domain.Bill) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	bill.ID = uuid.New()
	now := time.Now().UTC()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	err = tx.GetContext(ctx, &bill.BillNumber, `
		INSERT INTO bills (
			id, bill_number, customer_id, customer_name, customer_phone,
			customer_address, customer_gstin, bill_date, total_weight,
			total_amount, discount_percentage, discount_amount, tax_percentage,
			tax_amount, is_igst, cgst_amount, sgst_amount, igst_amount,
			final_amount, paid_amount, balance_amount, payment_method, notes,
			created_at, updated_at
		) VALUES (
			$1, nextval('bill_number_seq'), $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22,
			$23, $23
		)
		RETURNING bill_number`,
		bill.ID, bill.CustomerID, bill.CustomerName, bill.CustomerPhone,
		bill.CustomerAddress, bill.CustomerGSTIN, bill.BillDate, bill.TotalWeight,
		bill.TotalAmount, bill.DiscountPercentage, bill.DiscountAmount,
		bill.TaxPercentage, bill.TaxAmount, bill.IsIGST, bill.CGSTAmount,
		bill.SGSTAmount, bill.IGSTAmount, bill.FinalAmount, bill.PaidAmount,
		bill.BalanceAmount, bill.PaymentMethod, bill.Notes, now)
	if err != nil {
		return fmt.Errorf("billRepo.Create bill: %w", err)
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		item.ID = uuid.New()
		item.BillID = bill.ID
		item.Position = i
		item.CreatedAt = now
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bill_items (
				id, bill_id, position, item_name, metal_type, purity,
				weight_grams, rate_per_gram, making_charges, making_charges_type,
				making_charges_percentage, stone_charges, other_charges,
				total_amount, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			item.ID, item.BillID, item.Position, item.ItemName, item.MetalType,
			item.Purity, item.WeightGrams, item.RatePerGram, item.MakingCharges,
			item.MakingChargesType, item.MakingChargesPercentage,
			item.StoneCharges, item.OtherCharges, item.TotalAmount, now)
		if err != nil {
			return fmt.Errorf("billRepo.Create item %d: %w", i, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO daily_turnover (day, bill_count, total_amount)
		VALUES ($1, 1, $2)
		ON CONFLICT (day) DO UPDATE
		SET bill_count = daily_turnover.bill_count + 1,
		    total_amount = daily_turnover.total_amount + EXCLUDED.total_amount`,
		turnoverDay(bill.BillDate), bill.FinalAmount)
	if err != nil {
		return fmt.Errorf("billRepo.Create turnover: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Create commit: %w", err)
	}
	return nil
}

func (r *billRepo) GetByNumber(ctx context.Context, billNumber int64) (*domain.Bill, error) {
	var bill domain.Bill
	err := r.db.GetContext(ctx, &bill, "SELECT * FROM bills WHERE bill_number = $1", billNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("billRepo.GetByNumber: %w", err)
	}

	err = r.db.SelectContext(ctx, &bill.Items,
		"SELECT * FROM bill_items WHERE bill_id = $1 ORDER BY position", bill.ID)
	if err != nil {
		return nil, fmt.Errorf("billRepo.GetByNumber items: %w", err)
	}
	return &bill, nil
}

// UpdateHeader overwrites the customer and billing fields of a stored bill.
// Items are deliberately untouched; they are immutable after creation.
// The day's turnover aggregate moves with the bill in the same transaction:
// the amount added at creation is reversed on the old day and the new
// final_amount lands on the (possibly different) new day, so a later
// delete-with-reversal subtracts exactly what this update added.
func (r *billRepo) UpdateHeader(ctx context.Context, bill *domain.Bill) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateHeader begin: %w", err)
	}
	defer tx.Rollback()

	var prev struct {
		FinalAmount decimal.Decimal `db:"final_amount"`
		BillDate    time.Time       `db:"bill_date"`
	}
	err = tx.GetContext(ctx, &prev,
		"SELECT final_amount, bill_date FROM bills WHERE bill_number = $1 FOR UPDATE",
		bill.BillNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("billRepo.UpdateHeader lookup: %w", err)
	}

	bill.UpdatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		UPDATE bills SET
			customer_id = $1, customer_name = $2, customer_phone = $3,
			customer_address = $4, customer_gstin = $5, bill_date = $6,
			discount_percentage = $7, discount_amount = $8, tax_percentage = $9,
			tax_amount = $10, is_igst = $11, cgst_amount = $12, sgst_amount = $13,
			igst_amount = $14, final_amount = $15, paid_amount = $16,
			balance_amount = $17, payment_method = $18, notes = $19, updated_at = $20
		WHERE bill_number = $21`,
		bill.CustomerID, bill.CustomerName, bill.CustomerPhone,
		bill.CustomerAddress, bill.CustomerGSTIN, bill.BillDate,
		bill.DiscountPercentage, bill.DiscountAmount, bill.TaxPercentage,
		bill.TaxAmount, bill.IsIGST, bill.CGSTAmount, bill.SGSTAmount,
		bill.IGSTAmount, bill.FinalAmount, bill.PaidAmount, bill.BalanceAmount,
		bill.PaymentMethod, bill.Notes, bill.UpdatedAt, bill.BillNumber)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateHeader: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE daily_turnover
		SET bill_count = bill_count - 1, total_amount = total_amount - $1
		WHERE day = $2`,
		prev.FinalAmount, turnoverDay(prev.BillDate))
	if err != nil {
		return fmt.Errorf("billRepo.UpdateHeader turnover reverse: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO daily_turnover (day, bill_count, total_amount)
		VALUES ($1, 1, $2)
		ON CONFLICT (day) DO UPDATE
		SET bill_count = daily_turnover.bill_count + 1,
		    total_amount = daily_turnover.total_amount + EXCLUDED.total_amount`,
		turnoverDay(bill.BillDate), bill.FinalAmount)
	if err != nil {
		return fmt.Errorf("billRepo.UpdateHeader turnover apply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.UpdateHeader commit: %w", err)
	}
	return nil
}

// Delete removes the items then the bill. When removeFromTurnover is set, the
// day's cached aggregate is reversed in the same transaction; otherwise the
// deleted bill stays counted in turnover.
func (r *billRepo) Delete(ctx context.Context, billNumber int64, removeFromTurnover bool) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("billRepo.Delete begin: %w", err)
	}
	defer tx.Rollback()

	var bill domain.Bill
	err = tx.GetContext(ctx, &bill, "SELECT * FROM bills WHERE bill_number = $1", billNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("billRepo.Delete lookup: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM bill_items WHERE bill_id = $1", bill.ID); err != nil {
		return fmt.Errorf("billRepo.Delete items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM bills WHERE id = $1", bill.ID); err != nil {
		return fmt.Errorf("billRepo.Delete bill: %w", err)
	}

	if removeFromTurnover {
		_, err = tx.ExecContext(ctx, `
			UPDATE daily_turnover
			SET bill_count = bill_count - 1, total_amount = total_amount - $1
			WHERE day = $2`,
			bill.FinalAmount, turnoverDay(bill.BillDate))
		if err != nil {
			return fmt.Errorf("billRepo.Delete turnover: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("billRepo.Delete commit: %w", err)
	}
	return nil
}

func (r *billRepo) List(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM bills WHERE bill_date >= $1 AND bill_date < $2", from, to)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List count: %w", err)
	}

	var bills []domain.Bill
	err = r.db.SelectContext(ctx, &bills, `
		SELECT * FROM bills
		WHERE bill_date >= $1 AND bill_date < $2
		ORDER BY bill_number
		LIMIT $3 OFFSET $4`,
		from, to, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("billRepo.List: %w", err)
	}

	for i := range bills {
		err = r.db.SelectContext(ctx, &bills[i].Items,
			"SELECT * FROM bill_items WHERE bill_id = $1 ORDER BY position", bills[i].ID)
		if err != nil {
			return nil, 0, fmt.Errorf("billRepo.List items: %w", err)
		}
	}
	return bills, total, nil
}
