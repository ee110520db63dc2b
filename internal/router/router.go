package router

import (
	"github.com/gin-gonic/gin"

	"jewelpos/internal/handler"
	"jewelpos/internal/middleware"
	"jewelpos/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	rateH *handler.RateHandler,
	billingH *handler.BillingHandler,
	voucherH *handler.VoucherHandler,
	productH *handler.ProductHandler,
	reportH *handler.ReportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/otp/send", authH.SendOTP)
	auth.POST("/otp/verify", authH.VerifyOTP)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Metal rates
	rates := protected.Group("/rates")
	rates.GET("", rateH.List)
	rates.PUT("/:metal", rateH.Set)
	rates.POST("/:metal/lock", rateH.ToggleLock)
	rates.GET("/:metal/history", rateH.History)

	// Sales bills
	bills := protected.Group("/bills")
	bills.POST("/preview", billingH.Preview)
	bills.POST("", billingH.Create)
	bills.GET("", billingH.List)
	bills.GET("/:number", billingH.GetByNumber)
	bills.PUT("/:number", billingH.Update)
	bills.DELETE("/:number", billingH.Delete)

	// Customer registry
	protected.GET("/customers/:phone", billingH.LookupCustomer)

	// Purchase vouchers
	vouchers := protected.Group("/vouchers")
	vouchers.POST("", voucherH.Create)
	vouchers.GET("/:number", voucherH.GetByNumber)

	// Product catalog
	protected.GET("/products/:barcode", productH.Scan)

	// Reports and exports
	reports := protected.Group("/reports")
	reports.GET("/turnover", reportH.Turnover)
	reports.GET("/bills/export/csv", reportH.ExportCSV)
	reports.GET("/bills/export/xlsx", reportH.ExportXLSX)

	return r
}
