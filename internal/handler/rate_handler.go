package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jewelpos/internal/domain"
	"jewelpos/internal/service"
)

// RateHandler handles metal rate endpoints.
type RateHandler struct {
	rateService service.RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// List handles GET /api/v1/rates
// @Summary List current rates
// @Produce json
// @Success 200 {object} APIResponse "Current per-gram rates"
// @Security BearerAuth
// @Router /rates [get]
func (h *RateHandler) List(c *gin.Context) {
	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rates)
}

// Set handles PUT /api/v1/rates/:metal
// @Summary Update a metal rate
// @Description Accepts the rate per 10 grams and stores the per-gram value; rejected while locked
// @Accept json
// @Produce json
// @Param metal path string true "gold or silver"
// @Param request body service.SetRateInput true "Rate per 10 grams"
// @Success 200 {object} APIResponse "Updated rate"
// @Failure 409 {object} APIResponse "Rate locked"
// @Security BearerAuth
// @Router /rates/{metal} [put]
func (h *RateHandler) Set(c *gin.Context) {
	metal := domain.MetalType(c.Param("metal"))

	var input service.SetRateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rate, err := h.rateService.SetRate(c.Request.Context(), metal, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rate)
}

// ToggleLock handles POST /api/v1/rates/:metal/lock
// @Summary Toggle the rate lock
// @Produce json
// @Param metal path string true "gold or silver"
// @Success 200 {object} APIResponse "Rate with flipped lock"
// @Security BearerAuth
// @Router /rates/{metal}/lock [post]
func (h *RateHandler) ToggleLock(c *gin.Context) {
	metal := domain.MetalType(c.Param("metal"))

	rate, err := h.rateService.ToggleLock(c.Request.Context(), metal)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rate)
}

// History handles GET /api/v1/rates/:metal/history
// @Summary Rate history
// @Description Newest-first rate changes for the trend display
// @Produce json
// @Param metal path string true "gold or silver"
// @Param limit query int false "Entries to return" default(30)
// @Success 200 {object} APIResponse "History entries"
// @Security BearerAuth
// @Router /rates/{metal}/history [get]
func (h *RateHandler) History(c *gin.Context) {
	metal := domain.MetalType(c.Param("metal"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	entries, err := h.rateService.History(c.Request.Context(), metal, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}
