package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rate is the current per-gram price of a metal. One active row per metal type.
// A locked rate rejects updates until unlocked.
type Rate struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	MetalType   MetalType       `db:"metal_type" json:"metal_type"`
	RatePerGram decimal.Decimal `db:"rate_per_gram" json:"rate_per_gram"`
	IsLocked    bool            `db:"is_locked" json:"is_locked"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// RateHistoryEntry records one rate change. Rows are append-only and never
// modified or deleted; they feed the trend display.
type RateHistoryEntry struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	MetalType   MetalType       `db:"metal_type" json:"metal_type"`
	RatePerGram decimal.Decimal `db:"rate_per_gram" json:"rate_per_gram"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

// Customer is the shared customer registry entry, deduplicated by phone.
type Customer struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Address   string    `db:"address" json:"address"`
	Email     string    `db:"email" json:"email"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// BillItem is a line on a sales bill. total_amount always equals
// weight*rate + making + stone + other; making_charges is derived from
// making_charges_percentage when the type is percentage.
type BillItem struct {
	ID                      uuid.UUID         `db:"id" json:"id"`
	BillID                  uuid.UUID         `db:"bill_id" json:"bill_id"`
	Position                int               `db:"position" json:"position"`
	ItemName                string            `db:"item_name" json:"item_name"`
	MetalType               MetalType         `db:"metal_type" json:"metal_type"`
	Purity                  string            `db:"purity" json:"purity"`
	WeightGrams             decimal.Decimal   `db:"weight_grams" json:"weight_grams"`
	RatePerGram             decimal.Decimal   `db:"rate_per_gram" json:"rate_per_gram"`
	MakingCharges           decimal.Decimal   `db:"making_charges" json:"making_charges"`
	MakingChargesType       MakingChargesType `db:"making_charges_type" json:"making_charges_type"`
	MakingChargesPercentage decimal.Decimal   `db:"making_charges_percentage" json:"making_charges_percentage"`
	StoneCharges            decimal.Decimal   `db:"stone_charges" json:"stone_charges"`
	OtherCharges            decimal.Decimal   `db:"other_charges" json:"other_charges"`
	TotalAmount             decimal.Decimal   `db:"total_amount" json:"total_amount"`
	CreatedAt               time.Time         `db:"created_at" json:"created_at"`
}

// Bill is a sales invoice. Exactly one of {cgst+sgst} or {igst} is non-zero,
// selected by IsIGST. Totals are recomputed server-side from the items.
type Bill struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	BillNumber         int64           `db:"bill_number" json:"bill_number"`
	CustomerID         uuid.UUID       `db:"customer_id" json:"customer_id"`
	CustomerName       string          `db:"customer_name" json:"customer_name"`
	CustomerPhone      string          `db:"customer_phone" json:"customer_phone"`
	CustomerAddress    string          `db:"customer_address" json:"customer_address"`
	CustomerGSTIN      string          `db:"customer_gstin" json:"customer_gstin"`
	BillDate           time.Time       `db:"bill_date" json:"bill_date"`
	TotalWeight        decimal.Decimal `db:"total_weight" json:"total_weight"`
	TotalAmount        decimal.Decimal `db:"total_amount" json:"total_amount"`
	DiscountPercentage decimal.Decimal `db:"discount_percentage" json:"discount_percentage"`
	DiscountAmount     decimal.Decimal `db:"discount_amount" json:"discount_amount"`
	TaxPercentage      decimal.Decimal `db:"tax_percentage" json:"tax_percentage"`
	TaxAmount          decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	IsIGST             bool            `db:"is_igst" json:"is_igst"`
	CGSTAmount         decimal.Decimal `db:"cgst_amount" json:"cgst_amount"`
	SGSTAmount         decimal.Decimal `db:"sgst_amount" json:"sgst_amount"`
	IGSTAmount         decimal.Decimal `db:"igst_amount" json:"igst_amount"`
	FinalAmount        decimal.Decimal `db:"final_amount" json:"final_amount"`
	PaidAmount         decimal.Decimal `db:"paid_amount" json:"paid_amount"`
	BalanceAmount      decimal.Decimal `db:"balance_amount" json:"balance_amount"`
	PaymentMethod      string          `db:"payment_method" json:"payment_method"`
	Notes              string          `db:"notes" json:"notes"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`

	Items []BillItem `db:"-" json:"items"`
}

// PurchaseVoucherItem is a line on a buy-back voucher.
// total_amount = net_weight * rate_per_gram; no charges apply.
type PurchaseVoucherItem struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	VoucherID       uuid.UUID       `db:"voucher_id" json:"voucher_id"`
	Position        int             `db:"position" json:"position"`
	ItemDescription string          `db:"item_description" json:"item_description"`
	MetalType       MetalType       `db:"metal_type" json:"metal_type"`
	Purity          string          `db:"purity" json:"purity"`
	NetWeight       decimal.Decimal `db:"net_weight" json:"net_weight"`
	RatePerGram     decimal.Decimal `db:"rate_per_gram" json:"rate_per_gram"`
	TotalAmount     decimal.Decimal `db:"total_amount" json:"total_amount"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}

// PurchaseVoucher is a buy-back transaction record. Structurally parallel to a
// bill but carries no tax or discount. UTRNumber is required for bank payouts.
type PurchaseVoucher struct {
	ID              uuid.UUID            `db:"id" json:"id"`
	VoucherNumber   int64                `db:"voucher_number" json:"voucher_number"`
	CustomerID      uuid.UUID            `db:"customer_id" json:"customer_id"`
	CustomerName    string               `db:"customer_name" json:"customer_name"`
	CustomerPhone   string               `db:"customer_phone" json:"customer_phone"`
	CustomerAddress string               `db:"customer_address" json:"customer_address"`
	PANAadhaar      string               `db:"pan_aadhaar" json:"pan_aadhaar"`
	TotalWeight     decimal.Decimal      `db:"total_weight" json:"total_weight"`
	TotalAmount     decimal.Decimal      `db:"total_amount" json:"total_amount"`
	PaymentMethod   VoucherPaymentMethod `db:"payment_method" json:"payment_method"`
	UTRNumber       string               `db:"utr_number" json:"utr_number"`
	Notes           string               `db:"notes" json:"notes"`
	VoucherDate     time.Time            `db:"voucher_date" json:"voucher_date"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`

	Items []PurchaseVoucherItem `db:"-" json:"items"`
}

// EmailOTP is an issued one-time code. One active code per email; issuing a
// new one supersedes the prior.
type EmailOTP struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Email      string     `db:"email" json:"email"`
	Code       string     `db:"code" json:"-"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	ConsumedAt *time.Time `db:"consumed_at" json:"consumed_at"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// Product is a stocked item resolvable by its barcode; the scanner feeds its
// fields into the billing form as pricing defaults.
type Product struct {
	ID                      uuid.UUID       `db:"id" json:"id"`
	Name                    string          `db:"name" json:"name"`
	Barcode                 string          `db:"barcode" json:"barcode"`
	MetalType               MetalType       `db:"metal_type" json:"metal_type"`
	Purity                  string          `db:"purity" json:"purity"`
	WeightGrams             decimal.Decimal `db:"weight_grams" json:"weight_grams"`
	MakingChargesPercentage decimal.Decimal `db:"making_charges_percentage" json:"making_charges_percentage"`
	CreatedAt               time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at" json:"updated_at"`
}

// TurnoverEntry is one day's cached revenue aggregate. Bill creation adds to
// it; deletion subtracts only when the operator asks for it.
type TurnoverEntry struct {
	Day         time.Time       `db:"day" json:"day"`
	BillCount   int             `db:"bill_count" json:"bill_count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}
