package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/config"
	"jewelpos/internal/domain"
	"jewelpos/internal/service"
	"jewelpos/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var shopCfg = config.ShopConfig{
	Name:      "Sona Jewellers",
	GSTIN:     "27AAPFU0939F1ZV",
	StateCode: "27",
}

func newBillingService() (service.BillingService, *mocks.MockBillRepo, *mocks.MockCustomerRepo, *mocks.MockRateRepo) {
	billRepo := new(mocks.MockBillRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	rateRepo := new(mocks.MockRateRepo)
	svc := service.NewBillingService(billRepo, customerRepo, rateRepo, shopCfg)
	return svc, billRepo, customerRepo, rateRepo
}

func validCreateInput() service.CreateBillInput {
	return service.CreateBillInput{
		Customer: service.CustomerInput{
			Name:  "Asha Patil",
			Phone: "9876543210",
			Email: "asha@example.com",
		},
		Items: []service.BillItemInput{{
			ItemName:    "Gold chain",
			MetalType:   domain.MetalGold,
			WeightGrams: dec("10"),
			RatePerGram: dec("6000"),
			StoneCharges: dec("500"),
		}},
		Billing: service.BillingFieldsInput{
			TaxPercentage: dec("3"),
		},
	}
}

func TestCreateBill_Success(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6000")}, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.AnythingOfType("*domain.Customer")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Customer).ID = uuid.New()
		}).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	result, err := svc.CreateBill(context.Background(), validCreateInput())

	require.NoError(t, err)
	require.NotNil(t, result.Bill)
	// Item: 10*6000 + 500 stone = 60500; tax 3% = 1815, split evenly.
	assert.True(t, result.Bill.TotalAmount.Equal(dec("60500")))
	assert.True(t, result.Bill.TaxAmount.Equal(dec("1815")))
	assert.True(t, result.Bill.CGSTAmount.Equal(dec("907.5")))
	assert.True(t, result.Bill.SGSTAmount.Equal(dec("907.5")))
	assert.True(t, result.Bill.IGSTAmount.IsZero())
	assert.True(t, result.Bill.FinalAmount.Equal(dec("62315")))
	assert.False(t, result.Bill.IsIGST)
	assert.Empty(t, result.Warnings)
	billRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestCreateBill_MissingName(t *testing.T) {
	svc, _, _, _ := newBillingService()

	input := validCreateInput()
	input.Customer.Name = ""

	result, err := svc.CreateBill(context.Background(), input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "customer.name", verr.Field)
}

func TestCreateBill_MissingEmail(t *testing.T) {
	svc, _, _, _ := newBillingService()

	input := validCreateInput()
	input.Customer.Email = ""

	result, err := svc.CreateBill(context.Background(), input)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateBill_NoItems(t *testing.T) {
	svc, _, _, _ := newBillingService()

	input := validCreateInput()
	input.Items = nil

	result, err := svc.CreateBill(context.Background(), input)

	assert.Nil(t, result)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "items", verr.Field)
}

func TestCreateBill_ZeroWeightItem(t *testing.T) {
	svc, _, _, _ := newBillingService()

	input := validCreateInput()
	input.Items[0].WeightGrams = decimal.Zero

	result, err := svc.CreateBill(context.Background(), input)

	assert.Nil(t, result)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weight_grams", verr.Field)
}

func TestCreateBill_MissingItemMetalType(t *testing.T) {
	svc, billRepo, _, _ := newBillingService()

	input := validCreateInput()
	input.Items[0].MetalType = ""

	result, err := svc.CreateBill(context.Background(), input)

	assert.Nil(t, result)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "metal_type", verr.Field)
	billRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBill_InterStateGSTIN(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6000")}, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	input := validCreateInput()
	input.Customer.GSTIN = "09AAACH7409R1ZZ"

	result, err := svc.CreateBill(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, result.Bill.IsIGST, "different state prefix should default to IGST")
	assert.True(t, result.Bill.IGSTAmount.Equal(dec("1815")))
	assert.True(t, result.Bill.CGSTAmount.IsZero())
}

func TestCreateBill_ManualIGSTOverride(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6000")}, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	igst := true
	input := validCreateInput()
	input.Customer.GSTIN = "27AAPFU0939F1ZV" // same state, but the operator insists
	input.Billing.IsIGST = &igst

	result, err := svc.CreateBill(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, result.Bill.IsIGST, "manual override wins over GSTIN detection")
}

func TestCreateBill_WarnsOnBadGSTIN(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6000")}, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	input := validCreateInput()
	input.Customer.GSTIN = "not-a-gstin"

	result, err := svc.CreateBill(context.Background(), input)

	require.NoError(t, err, "a malformed GSTIN warns but never blocks")
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "GSTIN")
}

func TestCreateBill_WarnsOnMissingStoredRate(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).Return(nil, domain.ErrNotFound)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	result, err := svc.CreateBill(context.Background(), validCreateInput())

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "no stored rate")
}

func TestCreateBill_WarnsOnZeroStoredRate(t *testing.T) {
	svc, billRepo, customerRepo, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: decimal.Zero}, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	result, err := svc.CreateBill(context.Background(), validCreateInput())

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "zero")
}

func TestPreviewBill_RecomputesTotals(t *testing.T) {
	svc, _, _, rateRepo := newBillingService()

	rateRepo.On("GetByMetal", mock.Anything, domain.MetalGold).
		Return(&domain.Rate{MetalType: domain.MetalGold, RatePerGram: dec("6000")}, nil)

	preview, err := svc.PreviewBill(context.Background(), service.PreviewBillInput{
		Items: []service.BillItemInput{{
			ItemName:                "Gold bangle",
			MetalType:               domain.MetalGold,
			WeightGrams:             dec("10"),
			RatePerGram:             dec("6000"),
			MakingChargesType:       domain.MakingPercentage,
			MakingChargesPercentage: dec("8"),
		}},
		Billing: service.BillingFieldsInput{TaxPercentage: dec("3")},
	})

	require.NoError(t, err)
	require.Len(t, preview.Items, 1)
	assert.True(t, preview.Items[0].MakingCharges.Equal(dec("4800")))
	assert.True(t, preview.Items[0].TotalAmount.Equal(dec("64800")))
	assert.True(t, preview.Totals.FinalAmount.Equal(dec("66744")))
}

func TestUpdateBill_RetotalsFromStoredItems(t *testing.T) {
	svc, billRepo, customerRepo, _ := newBillingService()

	stored := &domain.Bill{
		BillNumber: 7,
		Items:      []domain.BillItem{{TotalAmount: dec("10000"), WeightGrams: dec("5")}},
	}
	billRepo.On("GetByNumber", mock.Anything, int64(7)).Return(stored, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("UpdateHeader", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	_, err := svc.UpdateBill(context.Background(), 7, service.UpdateBillInput{
		Customer: service.CustomerInput{Name: "Asha Patil", Phone: "9876543210", Email: "asha@example.com"},
		Billing:  service.BillingFieldsInput{DiscountPercentage: dec("10"), TaxPercentage: dec("3")},
	})

	require.NoError(t, err)
	billRepo.AssertCalled(t, "UpdateHeader", mock.Anything, mock.MatchedBy(func(b *domain.Bill) bool {
		return b.DiscountAmount.Equal(dec("1000")) && b.FinalAmount.Equal(dec("9270"))
	}))
}

// The repository moves the daily turnover aggregate using the bill date and
// final amount it is handed, so an update that re-dates or re-prices the bill
// must deliver both to UpdateHeader.
func TestUpdateBill_MovedDateAndAmountReachRepo(t *testing.T) {
	svc, billRepo, customerRepo, _ := newBillingService()

	stored := &domain.Bill{
		BillNumber: 7,
		BillDate:   time.Date(2026, 8, 10, 11, 0, 0, 0, time.UTC),
		Items:      []domain.BillItem{{TotalAmount: dec("10000"), WeightGrams: dec("5")}},
	}
	billRepo.On("GetByNumber", mock.Anything, int64(7)).Return(stored, nil)
	customerRepo.On("UpsertByPhone", mock.Anything, mock.Anything).Return(nil)
	billRepo.On("UpdateHeader", mock.Anything, mock.AnythingOfType("*domain.Bill")).Return(nil)

	newDate := time.Date(2026, 8, 15, 11, 0, 0, 0, time.UTC)
	_, err := svc.UpdateBill(context.Background(), 7, service.UpdateBillInput{
		Customer: service.CustomerInput{Name: "Asha Patil", Phone: "9876543210", Email: "asha@example.com"},
		Billing:  service.BillingFieldsInput{TaxPercentage: dec("3")},
		BillDate: &newDate,
	})

	require.NoError(t, err)
	billRepo.AssertCalled(t, "UpdateHeader", mock.Anything, mock.MatchedBy(func(b *domain.Bill) bool {
		return b.BillDate.Equal(newDate) && b.FinalAmount.Equal(dec("10300"))
	}))
}

func TestUpdateBill_NotFound(t *testing.T) {
	svc, billRepo, _, _ := newBillingService()

	billRepo.On("GetByNumber", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	bill, err := svc.UpdateBill(context.Background(), 99, service.UpdateBillInput{
		Customer: service.CustomerInput{Name: "A", Phone: "1", Email: "a@b.c"},
	})

	assert.Nil(t, bill)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteBill_PassesTurnoverFlag(t *testing.T) {
	svc, billRepo, _, _ := newBillingService()

	billRepo.On("Delete", mock.Anything, int64(5), true).Return(nil)

	err := svc.DeleteBill(context.Background(), 5, true)

	assert.NoError(t, err)
	billRepo.AssertExpectations(t)
}

func TestLookupCustomer_NotFound(t *testing.T) {
	svc, _, customerRepo, _ := newBillingService()

	customerRepo.On("GetByPhone", mock.Anything, "0000000000").Return(nil, domain.ErrNotFound)

	customer, err := svc.LookupCustomer(context.Background(), "0000000000")

	assert.Nil(t, customer)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
