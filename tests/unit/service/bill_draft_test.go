package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
)

func TestBillDraft_AddRemove(t *testing.T) {
	draft := service.NewBillDraft()

	id1, err := draft.AddItem(service.BillItemInput{
		ItemName:    "Gold ring",
		MetalType:   domain.MetalGold,
		WeightGrams: dec("4.2"),
		RatePerGram: dec("6000"),
	})
	require.NoError(t, err)

	id2, err := draft.AddItem(service.BillItemInput{
		ItemName:    "Silver anklet",
		MetalType:   domain.MetalSilver,
		WeightGrams: dec("35"),
		RatePerGram: dec("80"),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, draft.Len())
	assert.NotEqual(t, id1, id2)

	assert.True(t, draft.RemoveItem(id1))
	assert.Equal(t, 1, draft.Len())
	assert.Equal(t, "Silver anklet", draft.Items()[0].ItemName)

	assert.False(t, draft.RemoveItem("no-such-id"))
	assert.Equal(t, 1, draft.Len())
}

func TestBillDraft_KeepsClientTempID(t *testing.T) {
	draft := service.NewBillDraft()

	id, err := draft.AddItem(service.BillItemInput{
		TempID:      "row-3",
		ItemName:    "Gold stud",
		MetalType:   domain.MetalGold,
		WeightGrams: dec("1.1"),
		RatePerGram: dec("6000"),
	})

	require.NoError(t, err)
	assert.Equal(t, "row-3", id)
}

// Items persist in the order the operator keyed them, not alphabetically;
// the reloaded bill must show the same lines in the same order.
func TestBillDraft_ItemsKeepEntryOrder(t *testing.T) {
	draft := service.NewBillDraft()

	for _, name := range []string{"Zari pendant", "Mangalsutra", "Anklet"} {
		_, err := draft.AddItem(service.BillItemInput{
			ItemName:    name,
			MetalType:   domain.MetalGold,
			WeightGrams: dec("2"),
			RatePerGram: dec("6000"),
		})
		require.NoError(t, err)
	}

	items := draft.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "Zari pendant", items[0].ItemName)
	assert.Equal(t, "Mangalsutra", items[1].ItemName)
	assert.Equal(t, "Anklet", items[2].ItemName)
}

func TestBillDraft_AddItem_Validation(t *testing.T) {
	draft := service.NewBillDraft()

	_, err := draft.AddItem(service.BillItemInput{
		WeightGrams: dec("1"),
		RatePerGram: dec("6000"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "missing item name")

	_, err = draft.AddItem(service.BillItemInput{
		ItemName:    "Gold coin",
		WeightGrams: dec("-1"),
		RatePerGram: dec("6000"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "negative weight")

	_, err = draft.AddItem(service.BillItemInput{
		ItemName:    "Gold coin",
		MetalType:   domain.MetalType("bronze"),
		WeightGrams: dec("1"),
		RatePerGram: dec("6000"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation, "unknown metal")

	// An empty metal would sail past the service and die on the table's
	// CHECK constraint as a 500; it has to be caught here.
	_, err = draft.AddItem(service.BillItemInput{
		ItemName:    "Gold coin",
		WeightGrams: dec("1"),
		RatePerGram: dec("6000"),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr, "missing metal")
	assert.Equal(t, "metal_type", vErr.Field)

	assert.Equal(t, 0, draft.Len(), "rejected items never land on the draft")
}

func TestBillDraft_DefaultsManualMaking(t *testing.T) {
	draft := service.NewBillDraft()

	_, err := draft.AddItem(service.BillItemInput{
		ItemName:    "Gold chain",
		MetalType:   domain.MetalGold,
		WeightGrams: dec("10"),
		RatePerGram: dec("6000"),
	})
	require.NoError(t, err)

	item := draft.Items()[0]
	assert.Equal(t, domain.MakingManual, item.MakingChargesType)
	assert.True(t, item.TotalAmount.Equal(dec("60000")))
}
