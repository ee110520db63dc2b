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

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

// UpsertByPhone inserts the customer or, when the phone already exists,
// overwrites the stored fields with the incoming form values, email included.
func (r *customerRepo) UpsertByPhone(ctx context.Context, customer *domain.Customer) error {
	now := time.Now().UTC()
	var row domain.Customer
	err := r.db.GetContext(ctx, &row, `
		INSERT INTO customers (id, name, phone, address, email, gstin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address,
		    email = EXCLUDED.email, gstin = EXCLUDED.gstin,
		    updated_at = EXCLUDED.updated_at
		RETURNING *`,
		uuid.New(), customer.Name, customer.Phone, customer.Address,
		customer.Email, customer.GSTIN, now)
	if err != nil {
		return fmt.Errorf("customerRepo.UpsertByPhone: %w", err)
	}
	*customer = row
	return nil
}

func (r *customerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, "SELECT * FROM customers WHERE phone = $1", phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByPhone: %w", err)
	}
	return &customer, nil
}
