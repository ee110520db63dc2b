package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
	"jewelpos/internal/port"
	"jewelpos/internal/pricing"
)

// VoucherItemInput is the DTO for one buy-back line.
type VoucherItemInput struct {
	ItemDescription string           `json:"item_description"`
	MetalType       domain.MetalType `json:"metal_type"`
	Purity          string           `json:"purity"`
	NetWeight       decimal.Decimal  `json:"net_weight"`
	RatePerGram     decimal.Decimal  `json:"rate_per_gram"`
}

// VoucherPaymentInput is the DTO for the payout block. UTRNumber is required
// when the method is bank.
type VoucherPaymentInput struct {
	Method    domain.VoucherPaymentMethod `json:"method"`
	UTRNumber string                      `json:"utr_number"`
}

// CreateVoucherInput is the DTO for creating a purchase voucher.
type CreateVoucherInput struct {
	Customer    CustomerInput       `json:"customer"`
	PANAadhaar  string              `json:"pan_aadhaar"`
	Items       []VoucherItemInput  `json:"items"`
	Payment     VoucherPaymentInput `json:"payment"`
	Notes       string              `json:"notes"`
	VoucherDate time.Time           `json:"voucher_date"`
}

// VoucherService is the purchase voucher lifecycle manager. Vouchers are
// create-and-print records: no update or delete flow exists.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.PurchaseVoucher, error)
	GetVoucher(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error)
}

type voucherService struct {
	voucherRepo  port.VoucherRepository
	customerRepo port.CustomerRepository
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo port.VoucherRepository, customerRepo port.CustomerRepository) VoucherService {
	return &voucherService{voucherRepo: voucherRepo, customerRepo: customerRepo}
}

func (s *voucherService) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.PurchaseVoucher, error) {
	if input.Customer.Name == "" {
		return nil, domain.NewValidationError("customer.name", "is required")
	}
	if input.Customer.Phone == "" {
		return nil, domain.NewValidationError("customer.phone", "is required")
	}
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}
	switch input.Payment.Method {
	case domain.VoucherPaymentCash:
	case domain.VoucherPaymentBank:
		if input.Payment.UTRNumber == "" {
			return nil, domain.NewValidationError("payment.utr_number", "is required for bank payouts")
		}
	default:
		return nil, domain.NewValidationError("payment.method", "must be cash or bank")
	}

	items := make([]domain.PurchaseVoucherItem, 0, len(input.Items))
	totalWeight := decimal.Zero
	totalAmount := decimal.Zero
	for _, in := range input.Items {
		if in.ItemDescription == "" {
			return nil, domain.NewValidationError("item_description", "is required")
		}
		if in.NetWeight.LessThanOrEqual(decimal.Zero) {
			return nil, domain.NewValidationError("net_weight", "must be greater than zero")
		}
		if in.RatePerGram.LessThanOrEqual(decimal.Zero) {
			return nil, domain.NewValidationError("rate_per_gram", "must be greater than zero")
		}
		if !domain.ValidMetalTypes[in.MetalType] {
			return nil, domain.NewValidationError("metal_type", "must be gold or silver")
		}

		item := domain.PurchaseVoucherItem{
			ItemDescription: in.ItemDescription,
			MetalType:       in.MetalType,
			Purity:          in.Purity,
			NetWeight:       in.NetWeight,
			RatePerGram:     in.RatePerGram,
		}
		item.TotalAmount = pricing.VoucherItemTotal(&item)
		totalWeight = totalWeight.Add(item.NetWeight)
		totalAmount = totalAmount.Add(item.TotalAmount)
		items = append(items, item)
	}

	customer := &domain.Customer{
		Name:    input.Customer.Name,
		Phone:   input.Customer.Phone,
		Address: input.Customer.Address,
		Email:   input.Customer.Email,
		GSTIN:   input.Customer.GSTIN,
	}
	if err := s.customerRepo.UpsertByPhone(ctx, customer); err != nil {
		return nil, err
	}

	voucherDate := input.VoucherDate
	if voucherDate.IsZero() {
		voucherDate = time.Now().UTC()
	}

	voucher := &domain.PurchaseVoucher{
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		PANAadhaar:      input.PANAadhaar,
		TotalWeight:     totalWeight,
		TotalAmount:     totalAmount,
		PaymentMethod:   input.Payment.Method,
		UTRNumber:       input.Payment.UTRNumber,
		Notes:           input.Notes,
		VoucherDate:     voucherDate,
		Items:           items,
	}

	if err := s.voucherRepo.Create(ctx, voucher); err != nil {
		return nil, err
	}
	return voucher, nil
}

func (s *voucherService) GetVoucher(ctx context.Context, voucherNumber int64) (*domain.PurchaseVoucher, error) {
	return s.voucherRepo.GetByNumber(ctx, voucherNumber)
}
