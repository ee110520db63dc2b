package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jewelpos/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (19 columns).
var columns = []string{
	"Bill Number",
	"Bill Date",
	"Customer Name",
	"Customer Phone",
	"Customer GSTIN",
	"Item Count",
	"Total Weight (g)",
	"Total Amount",
	"Discount",
	"Taxable Amount",
	"Tax %",
	"CGST",
	"SGST",
	"IGST",
	"Tax Amount",
	"Final Amount",
	"Paid Amount",
	"Balance",
	"Created At",
}

// Writer wraps csv.Writer for exporting bills as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteBills converts a batch of bills to CSV rows and writes them.
func (w *Writer) WriteBills(bills []domain.Bill) error {
	for i := range bills {
		row := billToRow(&bills[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// billToRow converts a single bill to a 19-element string slice.
// The tax columns follow the bill's IGST flag: an interstate bill fills
// only the IGST column, an intrastate bill fills CGST and SGST.
func billToRow(bill *domain.Bill) []string {
	row := make([]string, len(columns))

	taxable := bill.TotalAmount.Sub(bill.DiscountAmount)

	row[0] = strconv.FormatInt(bill.BillNumber, 10)
	row[1] = bill.BillDate.Format("2006-01-02")
	row[2] = bill.CustomerName
	row[3] = bill.CustomerPhone
	row[4] = bill.CustomerGSTIN
	row[5] = strconv.Itoa(len(bill.Items))
	row[6] = formatWeight(bill.TotalWeight)
	row[7] = formatMoney(bill.TotalAmount)
	row[8] = formatMoney(bill.DiscountAmount)
	row[9] = formatMoney(taxable)
	row[10] = bill.TaxPercentage.String()
	row[11] = formatMoney(bill.CGSTAmount)
	row[12] = formatMoney(bill.SGSTAmount)
	row[13] = formatMoney(bill.IGSTAmount)
	row[14] = formatMoney(bill.TaxAmount)
	row[15] = formatMoney(bill.FinalAmount)
	row[16] = formatMoney(bill.PaidAmount)
	row[17] = formatMoney(bill.BalanceAmount)
	row[18] = bill.CreatedAt.Format(time.RFC3339)

	return row
}

func formatMoney(v decimal.Decimal) string {
	return v.StringFixed(2)
}

func formatWeight(v decimal.Decimal) string {
	return v.StringFixed(3)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a label for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for the Content-Disposition header.
// Format: {sanitized_label}_{YYYY-MM-DD}.{ext}
func BuildFilename(label, ext string) string {
	sanitized := SanitizeFilename(label)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
