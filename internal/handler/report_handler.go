package handler

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/csvexport"
	"jewelpos/internal/service"
	"jewelpos/internal/xlsxexport"
)

// ReportHandler handles turnover and sales register endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Turnover handles GET /api/v1/reports/turnover
// @Summary Daily turnover in a date window
// @Description Returns per-day bill count and turnover from the cached aggregate
// @Tags reports
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} APIResponse "Daily turnover entries"
// @Security BearerAuth
// @Router /reports/turnover [get]
func (h *ReportHandler) Turnover(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "dates must be YYYY-MM-DD")
		return
	}

	entries, err := h.reportService.Turnover(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// ExportCSV handles GET /api/v1/reports/bills/export/csv
// @Summary Export the sales register as CSV
// @Description Streams one row per bill in the window, UTF-8 with BOM for Excel
// @Tags reports
// @Produce text/csv
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /reports/bills/export/csv [get]
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "dates must be YYYY-MM-DD")
		return
	}

	bills, err := h.reportService.BillRegister(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("sales_register", "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	// Headers are already sent; export errors can only be logged.
	if _, werr := c.Writer.Write(csvexport.BOM); werr != nil {
		log.Printf("[ERROR] csv export: write BOM: %v", werr)
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if werr := w.WriteHeader(); werr != nil {
		log.Printf("[ERROR] csv export: write header: %v", werr)
		return
	}
	if werr := w.WriteBills(bills); werr != nil {
		log.Printf("[ERROR] csv export: write rows: %v", werr)
		return
	}
	w.Flush()
	if werr := w.Error(); werr != nil {
		log.Printf("[ERROR] csv export: flush: %v", werr)
	}
}

// ExportXLSX handles GET /api/v1/reports/bills/export/xlsx
// @Summary Export the sales register as an Excel workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /reports/bills/export/xlsx [get]
func (h *ReportHandler) ExportXLSX(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "dates must be YYYY-MM-DD")
		return
	}

	bills, err := h.reportService.BillRegister(c.Request.Context(), from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("sales_register", "xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if werr := xlsxexport.WriteBills(c.Writer, bills); werr != nil {
		log.Printf("[ERROR] xlsx export: %v", werr)
	}
}
