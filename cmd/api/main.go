package main

import (
	"log"

	"github.com/dmelo/assistech-api/internal/application/service"
	"github.com/dmelo/assistech-api/internal/config"
	"github.com/dmelo/assistech-api/internal/infrastructure/database"
	"github.com/dmelo/assistech-api/internal/infrastructure/repository"
	"github.com/dmelo/assistech-api/internal/presentation/http/handler"
	"github.com/dmelo/assistech-api/internal/presentation/http/routes"
	"github.com/dmelo/assistech-api/pkg/document"
	"github.com/dmelo/assistech-api/pkg/email"
	"github.com/dmelo/assistech-api/pkg/pix"
	"github.com/dmelo/assistech-api/pkg/printer"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/gin-gonic/gin"
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

	// Seed the admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	saleItemRepo := repository.NewSaleItemRepository(db)
	serviceOrderRepo := repository.NewServiceOrderRepository(db)
	warrantyRepo := repository.NewWarrantyRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Document renderer and PIX payload builder
	shop := document.ShopInfo{
		Name:    cfg.Shop.Name,
		Address: cfg.Shop.Address,
		Phone:   cfg.Shop.Phone,
		TaxID:   cfg.Shop.TaxID,
	}
	renderer := document.NewRenderer(shop)
	pixBuilder := pix.NewBuilder(pix.Config{
		Key:          cfg.Pix.Key,
		MerchantName: cfg.Pix.MerchantName,
		MerchantCity: cfg.Pix.MerchantCity,
	})
	qrEncoder := pix.NewQRImageEncoder(0)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	customerService := service.NewCustomerService(customerRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, saleItemRepo, productRepo, customerRepo, userRepo)
	serviceOrderService := service.NewServiceOrderService(serviceOrderRepo, customerRepo)
	warrantyService := service.NewWarrantyService(warrantyRepo, serviceOrderRepo, cfg.Shop.WarrantyDays)
	reportService := service.NewReportService(saleRepo)

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
	printerService := service.NewPrinterService(thermalPrinter, saleService, shop, pixBuilder, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Customer:     handler.NewCustomerHandler(customerService),
		Product:      handler.NewProductHandler(productService),
		Sale:         handler.NewSaleHandler(saleService, renderer, emailService),
		ServiceOrder: handler.NewServiceOrderHandler(serviceOrderService),
		Warranty:     handler.NewWarrantyHandler(warrantyService, renderer, emailService),
		Payment:      handler.NewPaymentHandler(pixBuilder, qrEncoder, saleService),
		Printer:      handler.NewPrinterHandler(printerService),
		Report:       handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
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
	}
}
