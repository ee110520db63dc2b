package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/service"
)

// VoucherHandler handles purchase voucher endpoints.
type VoucherHandler struct {
	voucherService service.VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherService service.VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService}
}

// Create handles POST /api/v1/vouchers
// @Summary Create a purchase voucher
// @Description Records old-metal buy-back from a customer; the voucher number is assigned server-side
// @Tags vouchers
// @Accept json
// @Produce json
// @Param request body service.CreateVoucherInput true "Seller, items and payment"
// @Success 201 {object} APIResponse "Created voucher"
// @Failure 400 {object} APIResponse "Validation error"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *VoucherHandler) Create(c *gin.Context) {
	var input service.CreateVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, voucher)
}

// GetByNumber handles GET /api/v1/vouchers/:number
// @Summary Look up a purchase voucher for reprint
// @Tags vouchers
// @Produce json
// @Param number path int true "Voucher number"
// @Success 200 {object} APIResponse "Voucher with items"
// @Failure 404 {object} APIResponse "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{number} [get]
func (h *VoucherHandler) GetByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_NUMBER", "invalid voucher number")
		return
	}

	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), number)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, voucher)
}
