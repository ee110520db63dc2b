package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
	"jewelpos/mocks"
)

func TestReportService_Turnover(t *testing.T) {
	turnoverRepo := new(mocks.MockTurnoverRepo)
	billRepo := new(mocks.MockBillRepo)
	svc := service.NewReportService(turnoverRepo, billRepo)

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	expected := []domain.TurnoverEntry{
		{Day: from, BillCount: 3, TotalAmount: dec("185000")},
	}
	turnoverRepo.On("Range", mock.Anything, from, to).Return(expected, nil)

	entries, err := svc.Turnover(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, expected, entries)
	turnoverRepo.AssertExpectations(t)
}

func TestReportService_BillRegister_PagesThroughAllBills(t *testing.T) {
	turnoverRepo := new(mocks.MockTurnoverRepo)
	billRepo := new(mocks.MockBillRepo)
	svc := service.NewReportService(turnoverRepo, billRepo)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	firstPage := make([]domain.Bill, 500)
	for i := range firstPage {
		firstPage[i].BillNumber = int64(i + 1)
	}
	secondPage := []domain.Bill{{BillNumber: 501}, {BillNumber: 502}}

	billRepo.On("List", mock.Anything, from, to, 0, 500).Return(firstPage, 502, nil)
	billRepo.On("List", mock.Anything, from, to, 500, 500).Return(secondPage, 502, nil)

	bills, err := svc.BillRegister(context.Background(), from, to)

	require.NoError(t, err)
	assert.Len(t, bills, 502)
	assert.Equal(t, int64(502), bills[501].BillNumber)
	billRepo.AssertExpectations(t)
}

func TestReportService_BillRegister_Empty(t *testing.T) {
	turnoverRepo := new(mocks.MockTurnoverRepo)
	billRepo := new(mocks.MockBillRepo)
	svc := service.NewReportService(turnoverRepo, billRepo)

	from := time.Now().UTC()
	to := from.AddDate(0, 0, 1)
	billRepo.On("List", mock.Anything, from, to, 0, 500).Return([]domain.Bill{}, 0, nil)

	bills, err := svc.BillRegister(context.Background(), from, to)

	require.NoError(t, err)
	assert.Empty(t, bills)
}
