package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
	"jewelpos/internal/pricing"
)

// BillItemInput is the DTO for one bill line as entered on the form.
// TempID is client-generated and never reaches the persistence layer.
type BillItemInput struct {
	TempID                  string                   `json:"temp_id"`
	ItemName                string                   `json:"item_name"`
	MetalType               domain.MetalType         `json:"metal_type"`
	Purity                  string                   `json:"purity"`
	WeightGrams             decimal.Decimal          `json:"weight_grams"`
	RatePerGram             decimal.Decimal          `json:"rate_per_gram"`
	MakingCharges           decimal.Decimal          `json:"making_charges"`
	MakingChargesType       domain.MakingChargesType `json:"making_charges_type"`
	MakingChargesPercentage decimal.Decimal          `json:"making_charges_percentage"`
	StoneCharges            decimal.Decimal          `json:"stone_charges"`
	OtherCharges            decimal.Decimal          `json:"other_charges"`
}

type draftItem struct {
	tempID string
	item   domain.BillItem
}

// BillDraft is the in-memory item list of a bill being composed. Items carry
// temporary ids until the bill is saved; every mutation that touches weight
// or rate goes through pricing.RecomputeDerived so percentage making charges
// and totals can never go stale.
type BillDraft struct {
	items []draftItem
}

// NewBillDraft creates an empty draft.
func NewBillDraft() *BillDraft {
	return &BillDraft{}
}

// AddItem validates and appends a line, returning its temporary id.
func (d *BillDraft) AddItem(input BillItemInput) (string, error) {
	if input.ItemName == "" {
		return "", domain.NewValidationError("item_name", "is required")
	}
	if input.WeightGrams.LessThanOrEqual(decimal.Zero) {
		return "", domain.NewValidationError("weight_grams", "must be greater than zero")
	}
	if input.RatePerGram.LessThanOrEqual(decimal.Zero) {
		return "", domain.NewValidationError("rate_per_gram", "must be greater than zero")
	}
	// The bills schema rejects anything outside the enum, empty included;
	// catching it here keeps the failure an inline form error.
	if !domain.ValidMetalTypes[input.MetalType] {
		return "", domain.NewValidationError("metal_type", "must be gold or silver")
	}

	item := domain.BillItem{
		ItemName:                input.ItemName,
		MetalType:               input.MetalType,
		Purity:                  input.Purity,
		WeightGrams:             input.WeightGrams,
		RatePerGram:             input.RatePerGram,
		MakingCharges:           input.MakingCharges,
		MakingChargesType:       input.MakingChargesType,
		MakingChargesPercentage: input.MakingChargesPercentage,
		StoneCharges:            input.StoneCharges,
		OtherCharges:            input.OtherCharges,
	}
	if item.MakingChargesType == "" {
		item.MakingChargesType = domain.MakingManual
	}
	pricing.RecomputeDerived(&item)

	tempID := input.TempID
	if tempID == "" {
		tempID = uuid.NewString()
	}
	d.items = append(d.items, draftItem{tempID: tempID, item: item})
	return tempID, nil
}

// RemoveItem drops the line with the given temporary id. It does not retotal;
// the caller decides when totals are recomputed.
func (d *BillDraft) RemoveItem(tempID string) bool {
	for i := range d.items {
		if d.items[i].tempID == tempID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of lines on the draft.
func (d *BillDraft) Len() int { return len(d.items) }

// Items returns the draft lines without their temporary ids, ready to persist.
func (d *BillDraft) Items() []domain.BillItem {
	items := make([]domain.BillItem, len(d.items))
	for i := range d.items {
		items[i] = d.items[i].item
	}
	return items
}

// Totals aggregates the draft through the pricing engine.
func (d *BillDraft) Totals(discountPct, taxPct decimal.Decimal, isIGST bool, paid decimal.Decimal) pricing.BillTotals {
	return pricing.ComputeBillTotals(d.Items(), discountPct, taxPct, isIGST, paid)
}
