// Package pricing holds the pure computation rules for bills and vouchers.
// Nothing here touches storage; services call in with fully-populated values
// and persist whatever comes back.
package pricing

import (
	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
)

var hundred = decimal.NewFromInt(100)
var two = decimal.NewFromInt(2)

// BillTotals is the aggregate result of totalling a bill.
type BillTotals struct {
	TotalWeight    decimal.Decimal
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	CGSTAmount     decimal.Decimal
	SGSTAmount     decimal.Decimal
	IGSTAmount     decimal.Decimal
	FinalAmount    decimal.Decimal
	BalanceAmount  decimal.Decimal
}

// ItemTotal computes a bill item's total:
// weight*rate + making + stone + other. No rounding is applied; currency
// precision is a display concern.
func ItemTotal(item *domain.BillItem) decimal.Decimal {
	return item.WeightGrams.Mul(item.RatePerGram).
		Add(item.MakingCharges).
		Add(item.StoneCharges).
		Add(item.OtherCharges)
}

// RecomputeMakingCharges refreshes the derived making charges on a
// percentage-typed item: weight*rate*pct/100. Manual items are left untouched.
func RecomputeMakingCharges(item *domain.BillItem) {
	if item.MakingChargesType != domain.MakingPercentage {
		return
	}
	item.MakingCharges = item.WeightGrams.
		Mul(item.RatePerGram).
		Mul(item.MakingChargesPercentage).
		Div(hundred)
}

// RecomputeDerived is the single entry point every mutator that touches an
// item's weight or rate must call: it refreshes percentage making charges and
// then the item total. Skipping it on a weight/rate edit is how stale totals
// happen.
func RecomputeDerived(item *domain.BillItem) {
	RecomputeMakingCharges(item)
	item.TotalAmount = ItemTotal(item)
}

// ComputeBillTotals aggregates item totals and applies discount, tax split and
// payment. The tax amount lands entirely on IGST for inter-state bills and is
// split evenly between CGST and SGST otherwise. BalanceAmount goes negative
// when paid exceeds final; callers render that as a credit, not an error.
func ComputeBillTotals(items []domain.BillItem, discountPct, taxPct decimal.Decimal, isIGST bool, paid decimal.Decimal) BillTotals {
	var t BillTotals
	t.TotalWeight = decimal.Zero
	t.TotalAmount = decimal.Zero
	for i := range items {
		t.TotalWeight = t.TotalWeight.Add(items[i].WeightGrams)
		t.TotalAmount = t.TotalAmount.Add(items[i].TotalAmount)
	}

	t.DiscountAmount = t.TotalAmount.Mul(discountPct).Div(hundred)
	taxable := t.TotalAmount.Sub(t.DiscountAmount)
	t.TaxAmount = taxable.Mul(taxPct).Div(hundred)

	if isIGST {
		t.IGSTAmount = t.TaxAmount
		t.CGSTAmount = decimal.Zero
		t.SGSTAmount = decimal.Zero
	} else {
		half := t.TaxAmount.Div(two)
		t.CGSTAmount = half
		t.SGSTAmount = half
		t.IGSTAmount = decimal.Zero
	}

	t.FinalAmount = taxable.Add(t.TaxAmount)
	t.BalanceAmount = t.FinalAmount.Sub(paid)
	return t
}

// VoucherItemTotal computes a purchase voucher line: net_weight * rate.
func VoucherItemTotal(item *domain.PurchaseVoucherItem) decimal.Decimal {
	return item.NetWeight.Mul(item.RatePerGram)
}
