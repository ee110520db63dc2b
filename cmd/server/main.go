package main

import (
	"fmt"
	"log"

	"jewelpos/internal/config"
	"jewelpos/internal/email/noop"
	"jewelpos/internal/email/ses"
	"jewelpos/internal/handler"
	"jewelpos/internal/port"
	"jewelpos/internal/repository/postgres"
	"jewelpos/internal/router"
	"jewelpos/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	rateRepo := postgres.NewRateRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	billRepo := postgres.NewBillRepo(db)
	voucherRepo := postgres.NewVoucherRepo(db)
	otpRepo := postgres.NewOTPRepo(db)
	productRepo := postgres.NewProductRepo(db)
	turnoverRepo := postgres.NewTurnoverRepo(db)

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		log.Printf("Email provider %q not configured, OTP codes will be logged", cfg.Email.Provider)
		emailSender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWT, cfg.Shop)
	otpSvc := service.NewOTPService(otpRepo, emailSender, cfg.OTP)
	rateSvc := service.NewRateService(rateRepo)
	billingSvc := service.NewBillingService(billRepo, customerRepo, rateRepo, cfg.Shop)
	voucherSvc := service.NewVoucherService(voucherRepo, customerRepo)
	productSvc := service.NewProductService(productRepo)
	reportSvc := service.NewReportService(turnoverRepo, billRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, otpSvc)
	rateH := handler.NewRateHandler(rateSvc)
	billingH := handler.NewBillingHandler(billingSvc)
	voucherH := handler.NewVoucherHandler(voucherSvc)
	productH := handler.NewProductHandler(productSvc)
	reportH := handler.NewReportHandler(reportSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, rateH, billingH, voucherH, productH, reportH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
