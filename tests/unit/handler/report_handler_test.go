package handler_test

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/csvexport"
	"jewelpos/internal/domain"
	"jewelpos/internal/handler"
	"jewelpos/mocks"
)

func TestReportHandler_Turnover(t *testing.T) {
	svc := new(mocks.MockReportService)
	h := handler.NewReportHandler(svc)

	svc.On("Turnover", mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.TurnoverEntry{
			{Day: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC), BillCount: 4, TotalAmount: dec("250000")},
		}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/turnover?from=2026-08-01&to=2026-08-31", http.NoBody)

	h.Turnover(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "250000")
	svc.AssertExpectations(t)
}

func TestReportHandler_ExportCSV(t *testing.T) {
	svc := new(mocks.MockReportService)
	h := handler.NewReportHandler(svc)

	bills := []domain.Bill{{
		BillNumber:    11,
		CustomerName:  "Asha Patil",
		CustomerPhone: "9876543210",
		BillDate:      time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		TotalAmount:   dec("60500"),
		TaxAmount:     dec("1815"),
		CGSTAmount:    dec("907.5"),
		SGSTAmount:    dec("907.5"),
		FinalAmount:   dec("62315"),
		CreatedAt:     time.Now(),
	}}
	svc.On("BillRegister", mock.Anything, mock.Anything, mock.Anything).Return(bills, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/bills/export/csv", http.NoBody)

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "sales_register_")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, csvexport.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Bill Number", records[0][0])
	assert.Equal(t, "11", records[1][0])
	assert.Equal(t, "Asha Patil", records[1][2])
	assert.Equal(t, "62315.00", records[1][15])
	svc.AssertExpectations(t)
}

func TestReportHandler_ExportXLSX_SetsHeaders(t *testing.T) {
	svc := new(mocks.MockReportService)
	h := handler.NewReportHandler(svc)

	svc.On("BillRegister", mock.Anything, mock.Anything, mock.Anything).Return([]domain.Bill{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/bills/export/xlsx", http.NoBody)

	h.ExportXLSX(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(t, w.Body.Bytes(), "an empty register still yields a valid workbook")
}

func TestReportHandler_Turnover_BadDate(t *testing.T) {
	svc := new(mocks.MockReportService)
	h := handler.NewReportHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/reports/turnover?from=August", http.NoBody)

	h.Turnover(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Turnover", mock.Anything, mock.Anything, mock.Anything)
}
