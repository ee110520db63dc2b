package domain

// MetalType identifies the metal a rate or item is priced against.
type MetalType string

const (
	MetalGold   MetalType = "gold"
	MetalSilver MetalType = "silver"
)

// ValidMetalTypes lists the metals the shop trades in.
var ValidMetalTypes = map[MetalType]bool{
	MetalGold:   true,
	MetalSilver: true,
}

// MakingChargesType selects how an item's making charges are determined.
type MakingChargesType string

const (
	MakingManual     MakingChargesType = "manual"
	MakingPercentage MakingChargesType = "percentage"
)

// VoucherPaymentMethod is how a purchase voucher is paid out.
type VoucherPaymentMethod string

const (
	VoucherPaymentCash VoucherPaymentMethod = "cash"
	VoucherPaymentBank VoucherPaymentMethod = "bank"
)
