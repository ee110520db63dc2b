package handler

import (
	"github.com/gin-gonic/gin"

	"jewelpos/internal/service"
)

// ProductHandler handles barcode lookup for the billing screen.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// Scan handles GET /api/v1/products/:barcode
// @Summary Look up a product by barcode
// @Description Returns the catalog entry used to prefill a draft item
// @Tags products
// @Produce json
// @Param barcode path string true "Product barcode"
// @Success 200 {object} APIResponse "Product"
// @Failure 404 {object} APIResponse "Unknown barcode"
// @Security BearerAuth
// @Router /products/{barcode} [get]
func (h *ProductHandler) Scan(c *gin.Context) {
	product, err := h.productService.Scan(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, product)
}
