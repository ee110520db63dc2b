package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/service"
)

// BillingHandler handles sales bill endpoints.
type BillingHandler struct {
	billingService service.BillingService
}

// NewBillingHandler creates a new BillingHandler.
func NewBillingHandler(billingService service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Preview handles POST /api/v1/bills/preview
// @Summary Preview a bill draft
// @Description Recompute item and bill totals for an unsaved draft
// @Tags bills
// @Accept json
// @Produce json
// @Param request body service.PreviewBillInput true "Draft items and billing fields"
// @Success 200 {object} APIResponse "Recomputed draft"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /bills/preview [post]
func (h *BillingHandler) Preview(c *gin.Context) {
	var input service.PreviewBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	preview, err := h.billingService.PreviewBill(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, preview)
}

// Create handles POST /api/v1/bills
// @Summary Create a sales bill
// @Description Upserts the customer by phone, assigns the bill number server-side and persists bill and items atomically
// @Tags bills
// @Accept json
// @Produce json
// @Param request body service.CreateBillInput true "Customer, items and billing fields"
// @Success 201 {object} APIResponse "Created bill with warnings"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /bills [post]
func (h *BillingHandler) Create(c *gin.Context) {
	var input service.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.billingService.CreateBill(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, result)
}

// GetByNumber handles GET /api/v1/bills/:number
// @Summary Look up a bill
// @Tags bills
// @Produce json
// @Param number path int true "Bill number"
// @Success 200 {object} APIResponse "Bill with items"
// @Failure 404 {object} APIResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{number} [get]
func (h *BillingHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_NUMBER", "invalid bill number")
		return
	}

	bill, err := h.billingService.SearchBill(c.Request.Context(), number)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bill)
}

// Update handles PUT /api/v1/bills/:number
// @Summary Update a bill's header
// @Description Rewrites customer and billing fields; items stay as created
// @Tags bills
// @Accept json
// @Produce json
// @Param number path int true "Bill number"
// @Param request body service.UpdateBillInput true "Header fields"
// @Success 200 {object} APIResponse "Updated bill as persisted"
// @Failure 404 {object} APIResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{number} [put]
func (h *BillingHandler) Update(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_NUMBER", "invalid bill number")
		return
	}

	var input service.UpdateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.billingService.UpdateBill(c.Request.Context(), number, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, bill)
}

// Delete handles DELETE /api/v1/bills/:number
// @Summary Delete a bill
// @Description Removes items then the bill; remove_from_turnover also reverses the day's cached aggregate
// @Tags bills
// @Produce json
// @Param number path int true "Bill number"
// @Param remove_from_turnover query bool false "Also reverse the turnover aggregate" default(false)
// @Success 200 {object} APIResponse "Bill deleted"
// @Failure 404 {object} APIResponse "Bill not found"
// @Security BearerAuth
// @Router /bills/{number} [delete]
func (h *BillingHandler) Delete(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_NUMBER", "invalid bill number")
		return
	}

	removeFromTurnover := c.Query("remove_from_turnover") == "true"

	if err := h.billingService.DeleteBill(c.Request.Context(), number, removeFromTurnover); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "bill deleted"})
}

// List handles GET /api/v1/bills
// @Summary List bills in a date window
// @Tags bills
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse "Bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *BillingHandler) List(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_DATE", "dates must be YYYY-MM-DD")
		return
	}

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	bills, total, err := h.billingService.ListBills(c.Request.Context(), from, to, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// LookupCustomer handles GET /api/v1/customers/:phone
// @Summary Look up a customer by phone
// @Description Prefills the billing form from the customer registry
// @Tags customers
// @Produce json
// @Param phone path string true "Customer phone"
// @Success 200 {object} APIResponse "Customer"
// @Failure 404 {object} APIResponse "No customer with that phone"
// @Security BearerAuth
// @Router /customers/{phone} [get]
func (h *BillingHandler) LookupCustomer(c *gin.Context) {
	customer, err := h.billingService.LookupCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, customer)
}

// parseDateRange reads from/to query dates. Missing values default to the
// last 30 days; to is exclusive and advanced one day so a same-day range
// covers the whole day.
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}
	return from, to, nil
}
