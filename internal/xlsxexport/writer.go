// Package xlsxexport renders the sales register as an Excel workbook.
package xlsxexport

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"jewelpos/internal/domain"
)

const sheetName = "Sales Register"

// columns defines the header row. Order matches the CSV export so the two
// formats stay interchangeable for accountants.
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
}

// WriteBills renders bills to w as an .xlsx workbook with a bold header row
// and numeric cells typed as numbers so spreadsheet formulas work on them.
func WriteBills(w io.Writer, bills []domain.Bill) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("xlsxexport: header style: %w", err)
	}

	for i, col := range columns {
		cell, cerr := excelize.CoordinatesToCellName(i+1, 1)
		if cerr != nil {
			return fmt.Errorf("xlsxexport: header cell: %w", cerr)
		}
		if serr := f.SetCellValue(sheetName, cell, col); serr != nil {
			return fmt.Errorf("xlsxexport: header cell %s: %w", cell, serr)
		}
		if serr := f.SetCellStyle(sheetName, cell, cell, headerStyle); serr != nil {
			return fmt.Errorf("xlsxexport: header style %s: %w", cell, serr)
		}
	}

	for i := range bills {
		if err := writeBillRow(f, i+2, &bills[i]); err != nil {
			return err
		}
	}

	// Widen the name and GSTIN columns; the defaults truncate them.
	if err := f.SetColWidth(sheetName, "C", "E", 22); err != nil {
		return fmt.Errorf("xlsxexport: col width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

func writeBillRow(f *excelize.File, rowNum int, bill *domain.Bill) error {
	taxable := bill.TotalAmount.Sub(bill.DiscountAmount)

	values := []interface{}{
		bill.BillNumber,
		bill.BillDate.Format("2006-01-02"),
		bill.CustomerName,
		bill.CustomerPhone,
		bill.CustomerGSTIN,
		len(bill.Items),
		numeric(bill.TotalWeight),
		numeric(bill.TotalAmount),
		numeric(bill.DiscountAmount),
		numeric(taxable),
		numeric(bill.TaxPercentage),
		numeric(bill.CGSTAmount),
		numeric(bill.SGSTAmount),
		numeric(bill.IGSTAmount),
		numeric(bill.TaxAmount),
		numeric(bill.FinalAmount),
		numeric(bill.PaidAmount),
		numeric(bill.BalanceAmount),
	}

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("xlsxexport: row %d cell: %w", rowNum, err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("xlsxexport: row %d cell %s: %w", rowNum, cell, err)
		}
	}
	return nil
}

// numeric converts a decimal to float64 for cell storage. Precision loss is
// acceptable here; exports are for reading, the database stays exact.
func numeric(d decimal.Decimal) float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}
