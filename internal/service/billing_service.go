package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"jewelpos/internal/config"
	"jewelpos/internal/domain"
	"jewelpos/internal/port"
	"jewelpos/internal/pricing"
)

// CustomerInput is the DTO for the customer block of the billing form.
type CustomerInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin"`
}

// BillingFieldsInput is the DTO for the discount/tax/payment block.
// IsIGST nil means "auto-detect from the GSTIN"; a non-nil value is the
// operator's manual override and wins.
type BillingFieldsInput struct {
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	TaxPercentage      decimal.Decimal `json:"tax_percentage"`
	IsIGST             *bool           `json:"is_igst"`
	PaidAmount         decimal.Decimal `json:"paid_amount"`
	PaymentMethod      string          `json:"payment_method"`
	Notes              string          `json:"notes"`
}

// CreateBillInput is the DTO for creating a sales bill.
type CreateBillInput struct {
	Customer CustomerInput      `json:"customer"`
	Items    []BillItemInput    `json:"items"`
	Billing  BillingFieldsInput `json:"billing"`
	BillDate time.Time          `json:"bill_date"`
}

// UpdateBillInput is the DTO for updating a stored bill's header. Items are
// not part of it: item editing after creation is a known product limitation.
type UpdateBillInput struct {
	Customer CustomerInput      `json:"customer"`
	Billing  BillingFieldsInput `json:"billing"`
	BillDate *time.Time         `json:"bill_date"`
}

// PreviewBillInput is the DTO for a totals preview of an unsaved draft.
type PreviewBillInput struct {
	CustomerGSTIN string             `json:"customer_gstin"`
	Items         []BillItemInput    `json:"items"`
	Billing       BillingFieldsInput `json:"billing"`
}

// BillPreview is the recomputed state of a draft.
type BillPreview struct {
	Items    []domain.BillItem  `json:"items"`
	IsIGST   bool               `json:"is_igst"`
	Totals   pricing.BillTotals `json:"totals"`
	Warnings []string           `json:"warnings,omitempty"`
}

// BillResult is a created bill plus any soft warnings for the operator.
type BillResult struct {
	Bill     *domain.Bill `json:"bill"`
	Warnings []string     `json:"warnings,omitempty"`
}

// BillingService is the invoice lifecycle manager: compose, create, search,
// update the header, delete with an optional turnover reversal.
type BillingService interface {
	PreviewBill(ctx context.Context, input PreviewBillInput) (*BillPreview, error)
	CreateBill(ctx context.Context, input CreateBillInput) (*BillResult, error)
	SearchBill(ctx context.Context, billNumber int64) (*domain.Bill, error)
	UpdateBill(ctx context.Context, billNumber int64, input UpdateBillInput) (*domain.Bill, error)
	DeleteBill(ctx context.Context, billNumber int64, removeFromTurnover bool) error
	ListBills(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error)
	LookupCustomer(ctx context.Context, phone string) (*domain.Customer, error)
}

type billingService struct {
	billRepo     port.BillRepository
	customerRepo port.CustomerRepository
	rateRepo     port.RateRepository
	shopCfg      config.ShopConfig
}

// NewBillingService creates a new BillingService.
func NewBillingService(
	billRepo port.BillRepository,
	customerRepo port.CustomerRepository,
	rateRepo port.RateRepository,
	shopCfg config.ShopConfig,
) BillingService {
	return &billingService{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		rateRepo:     rateRepo,
		shopCfg:      shopCfg,
	}
}

func (s *billingService) PreviewBill(ctx context.Context, input PreviewBillInput) (*BillPreview, error) {
	draft := NewBillDraft()
	for _, item := range input.Items {
		if _, err := draft.AddItem(item); err != nil {
			return nil, err
		}
	}

	isIGST := s.effectiveIGST(input.Billing.IsIGST, input.CustomerGSTIN)
	totals := draft.Totals(input.Billing.DiscountPercentage, input.Billing.TaxPercentage, isIGST, input.Billing.PaidAmount)

	warnings := s.gstinWarnings(input.CustomerGSTIN)
	warnings = append(warnings, s.rateWarnings(ctx, draft.Items())...)

	return &BillPreview{
		Items:    draft.Items(),
		IsIGST:   isIGST,
		Totals:   totals,
		Warnings: warnings,
	}, nil
}

func (s *billingService) CreateBill(ctx context.Context, input CreateBillInput) (*BillResult, error) {
	if input.Customer.Name == "" {
		return nil, domain.NewValidationError("customer.name", "is required")
	}
	if input.Customer.Phone == "" {
		return nil, domain.NewValidationError("customer.phone", "is required")
	}
	// Email is mandatory: receipts are delivered by mail.
	if input.Customer.Email == "" {
		return nil, domain.NewValidationError("customer.email", "is required")
	}
	if len(input.Items) == 0 {
		return nil, domain.NewValidationError("items", "at least one item is required")
	}

	draft := NewBillDraft()
	for _, item := range input.Items {
		if _, err := draft.AddItem(item); err != nil {
			return nil, err
		}
	}

	warnings := s.gstinWarnings(input.Customer.GSTIN)
	warnings = append(warnings, s.rateWarnings(ctx, draft.Items())...)

	isIGST := s.effectiveIGST(input.Billing.IsIGST, input.Customer.GSTIN)
	totals := draft.Totals(input.Billing.DiscountPercentage, input.Billing.TaxPercentage, isIGST, input.Billing.PaidAmount)

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

	billDate := input.BillDate
	if billDate.IsZero() {
		billDate = time.Now().UTC()
	}

	bill := &domain.Bill{
		CustomerID:         customer.ID,
		CustomerName:       customer.Name,
		CustomerPhone:      customer.Phone,
		CustomerAddress:    customer.Address,
		CustomerGSTIN:      customer.GSTIN,
		BillDate:           billDate,
		TotalWeight:        totals.TotalWeight,
		TotalAmount:        totals.TotalAmount,
		DiscountPercentage: input.Billing.DiscountPercentage,
		DiscountAmount:     totals.DiscountAmount,
		TaxPercentage:      input.Billing.TaxPercentage,
		TaxAmount:          totals.TaxAmount,
		IsIGST:             isIGST,
		CGSTAmount:         totals.CGSTAmount,
		SGSTAmount:         totals.SGSTAmount,
		IGSTAmount:         totals.IGSTAmount,
		FinalAmount:        totals.FinalAmount,
		PaidAmount:         input.Billing.PaidAmount,
		BalanceAmount:      totals.BalanceAmount,
		PaymentMethod:      input.Billing.PaymentMethod,
		Notes:              input.Billing.Notes,
		Items:              draft.Items(),
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}
	return &BillResult{Bill: bill, Warnings: warnings}, nil
}

func (s *billingService) SearchBill(ctx context.Context, billNumber int64) (*domain.Bill, error) {
	return s.billRepo.GetByNumber(ctx, billNumber)
}

// UpdateBill rewrites the customer and billing fields of a stored bill and
// retotals it from the stored items. The item list itself is immutable; the
// stored state is re-read after the write to confirm what was persisted.
func (s *billingService) UpdateBill(ctx context.Context, billNumber int64, input UpdateBillInput) (*domain.Bill, error) {
	if input.Customer.Name == "" {
		return nil, domain.NewValidationError("customer.name", "is required")
	}
	if input.Customer.Phone == "" {
		return nil, domain.NewValidationError("customer.phone", "is required")
	}
	if input.Customer.Email == "" {
		return nil, domain.NewValidationError("customer.email", "is required")
	}

	bill, err := s.billRepo.GetByNumber(ctx, billNumber)
	if err != nil {
		return nil, err
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

	isIGST := s.effectiveIGST(input.Billing.IsIGST, input.Customer.GSTIN)
	totals := pricing.ComputeBillTotals(bill.Items, input.Billing.DiscountPercentage, input.Billing.TaxPercentage, isIGST, input.Billing.PaidAmount)

	bill.CustomerID = customer.ID
	bill.CustomerName = customer.Name
	bill.CustomerPhone = customer.Phone
	bill.CustomerAddress = customer.Address
	bill.CustomerGSTIN = customer.GSTIN
	if input.BillDate != nil {
		bill.BillDate = *input.BillDate
	}
	bill.DiscountPercentage = input.Billing.DiscountPercentage
	bill.DiscountAmount = totals.DiscountAmount
	bill.TaxPercentage = input.Billing.TaxPercentage
	bill.TaxAmount = totals.TaxAmount
	bill.IsIGST = isIGST
	bill.CGSTAmount = totals.CGSTAmount
	bill.SGSTAmount = totals.SGSTAmount
	bill.IGSTAmount = totals.IGSTAmount
	bill.FinalAmount = totals.FinalAmount
	bill.PaidAmount = input.Billing.PaidAmount
	bill.BalanceAmount = totals.BalanceAmount
	bill.PaymentMethod = input.Billing.PaymentMethod
	bill.Notes = input.Billing.Notes

	if err := s.billRepo.UpdateHeader(ctx, bill); err != nil {
		return nil, err
	}
	return s.billRepo.GetByNumber(ctx, billNumber)
}

func (s *billingService) DeleteBill(ctx context.Context, billNumber int64, removeFromTurnover bool) error {
	return s.billRepo.Delete(ctx, billNumber, removeFromTurnover)
}

func (s *billingService) ListBills(ctx context.Context, from, to time.Time, offset, limit int) ([]domain.Bill, int, error) {
	return s.billRepo.List(ctx, from, to, offset, limit)
}

func (s *billingService) LookupCustomer(ctx context.Context, phone string) (*domain.Customer, error) {
	return s.customerRepo.GetByPhone(ctx, phone)
}

// effectiveIGST applies the override-or-detect rule: an explicit value from
// the form wins; otherwise the GSTIN state prefix decides.
func (s *billingService) effectiveIGST(override *bool, gstin string) bool {
	if override != nil {
		return *override
	}
	return pricing.DetectIGST(gstin, s.shopCfg.StateCode)
}

func (s *billingService) gstinWarnings(gstin string) []string {
	if gstin == "" || pricing.ValidateGSTIN(gstin) {
		return nil
	}
	return []string{fmt.Sprintf("GSTIN %q does not match the standard 15-character format", gstin)}
}

// rateWarnings flags items priced against a metal that has no stored rate.
// A zero stored rate means "no rate available", never "free gold".
func (s *billingService) rateWarnings(ctx context.Context, items []domain.BillItem) []string {
	var warnings []string
	seen := map[domain.MetalType]bool{}
	for i := range items {
		metal := items[i].MetalType
		if seen[metal] {
			continue
		}
		seen[metal] = true

		rate, err := s.rateRepo.GetByMetal(ctx, metal)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				warnings = append(warnings, fmt.Sprintf("no stored rate for %s; verify the entered rate", metal))
			}
			// A lookup failure is not worth blocking billing over.
			continue
		}
		if rate.RatePerGram.IsZero() {
			warnings = append(warnings, fmt.Sprintf("stored rate for %s is zero; verify the entered rate", metal))
		}
	}
	return warnings
}
