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

type otpRepo struct {
	db *sqlx.DB
}

// NewOTPRepo creates a new PostgreSQL-backed OTPRepository.
func NewOTPRepo(db *sqlx.DB) port.OTPRepository {
	return &otpRepo{db: db}
}

// Replace deletes any prior codes for the email and inserts the new one in a
// single transaction, so at most one code is ever active per address.
func (r *otpRepo) Replace(ctx context.Context, otp *domain.EmailOTP) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("otpRepo.Replace begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM email_otps WHERE email = $1", otp.Email); err != nil {
		return fmt.Errorf("otpRepo.Replace delete: %w", err)
	}

	otp.ID = uuid.New()
	otp.CreatedAt = time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO email_otps (id, email, code, expires_at, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, NULL, $5)`,
		otp.ID, otp.Email, otp.Code, otp.ExpiresAt, otp.CreatedAt)
	if err != nil {
		return fmt.Errorf("otpRepo.Replace insert: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("otpRepo.Replace commit: %w", err)
	}
	return nil
}

func (r *otpRepo) GetActive(ctx context.Context, email string) (*domain.EmailOTP, error) {
	var otp domain.EmailOTP
	err := r.db.GetContext(ctx, &otp, `
		SELECT * FROM email_otps
		WHERE email = $1 AND consumed_at IS NULL`,
		email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("otpRepo.GetActive: %w", err)
	}
	return &otp, nil
}

func (r *otpRepo) Consume(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE email_otps SET consumed_at = $1
		WHERE id = $2 AND consumed_at IS NULL`,
		time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("otpRepo.Consume: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
