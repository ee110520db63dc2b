package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelpos/internal/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 19)
	assert.Equal(t, "Bill Number", row[0])
	assert.Equal(t, "Customer Name", row[2])
	assert.Equal(t, "Created At", row[18])
}

func TestWriteBills(t *testing.T) {
	bill := domain.Bill{
		ID:             uuid.New(),
		BillNumber:     42,
		CustomerName:   "Asha Patil",
		CustomerPhone:  "9876543210",
		CustomerGSTIN:  "27AAPFU0939F1ZV",
		BillDate:       time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
		TotalWeight:    dec("10.5"),
		TotalAmount:    dec("60500"),
		DiscountAmount: dec("500"),
		TaxPercentage:  dec("3"),
		TaxAmount:      dec("1800"),
		CGSTAmount:     dec("900"),
		SGSTAmount:     dec("900"),
		FinalAmount:    dec("61800"),
		PaidAmount:     dec("60000"),
		BalanceAmount:  dec("1800"),
		CreatedAt:      time.Date(2026, 8, 12, 10, 30, 0, 0, time.UTC),
		Items:          []domain.BillItem{{ItemName: "Gold chain"}, {ItemName: "Gold ring"}},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteBills([]domain.Bill{bill}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row := records[1]
	assert.Equal(t, "42", row[0])
	assert.Equal(t, "2026-08-12", row[1])
	assert.Equal(t, "Asha Patil", row[2])
	assert.Equal(t, "2", row[5])
	assert.Equal(t, "10.500", row[6])
	assert.Equal(t, "60500.00", row[7])
	assert.Equal(t, "60000.00", row[9])
	assert.Equal(t, "900.00", row[11])
	assert.Equal(t, "900.00", row[12])
	assert.Equal(t, "0.00", row[13])
	assert.Equal(t, "61800.00", row[15])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "sales_register", SanitizeFilename("sales register"))
	assert.Equal(t, "Q3_2026", SanitizeFilename("Q3 / 2026!"))
	assert.Equal(t, "report", SanitizeFilename("__report__"))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("sales register", "csv")
	assert.Contains(t, name, "sales_register_")
	assert.Contains(t, name, ".csv")
}
