package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/application/service"
	"github.com/sandrok/posify-api/internal/config"
	"github.com/sandrok/posify-api/internal/infrastructure/database"
	"github.com/sandrok/posify-api/internal/infrastructure/repository"
	"github.com/sandrok/posify-api/internal/presentation/http/handler"
	"github.com/sandrok/posify-api/internal/presentation/http/routes"
	"github.com/sandrok/posify-api/pkg/currency"
	"github.com/sandrok/posify-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	discountCampaignRepo := repository.NewDiscountCampaignRepository(db)
	comboCampaignRepo := repository.NewComboCampaignRepository(db)
	buyNGetNCampaignRepo := repository.NewBuyNGetNCampaignRepository(db)
	receiptCampaignRepo := repository.NewReceiptCampaignRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize exchange-rate client
	converter := currency.NewClient(cfg.Currency.BaseURL, cfg.Currency.Timeout)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	resolver := service.NewCampaignResolver(buyNGetNCampaignRepo, comboCampaignRepo, discountCampaignRepo, receiptCampaignRepo)
	productService := service.NewProductService(productRepo, resolver)
	shiftService := service.NewShiftService(shiftRepo)
	receiptService := service.NewReceiptService(receiptRepo, shiftRepo, productRepo, comboCampaignRepo, buyNGetNCampaignRepo, resolver)
	campaignService := service.NewCampaignService(discountCampaignRepo, comboCampaignRepo, buyNGetNCampaignRepo, receiptCampaignRepo, productRepo, resolver)
	paymentService := service.NewPaymentService(receiptRepo, shiftRepo, converter, thermalPrinter, cfg.Currency.HomeCurrency, cfg.Printer.StoreName)
	reportService := service.NewReportService(shiftRepo, cfg.Currency.HomeCurrency)

	// Initialize handlers
	handlers := &routes.Handlers{
		Product:  handler.NewProductHandler(productService),
		Shift:    handler.NewShiftHandler(shiftService),
		Receipt:  handler.NewReceiptHandler(receiptService, paymentService),
		Campaign: handler.NewCampaignHandler(campaignService),
		Report:   handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
