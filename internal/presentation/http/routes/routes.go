package routes

import (
	"time"

	"github.com/dmelo/assistech-api/internal/config"
	"github.com/dmelo/assistech-api/internal/domain/entity"
	domainRepo "github.com/dmelo/assistech-api/internal/domain/repository"
	"github.com/dmelo/assistech-api/internal/presentation/http/handler"
	"github.com/dmelo/assistech-api/internal/presentation/http/middleware"
	"github.com/dmelo/assistech-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth         *handler.AuthHandler
	Customer     *handler.CustomerHandler
	Product      *handler.ProductHandler
	Sale         *handler.SaleHandler
	ServiceOrder *handler.ServiceOrderHandler
	Warranty     *handler.WarrantyHandler
	Payment      *handler.PaymentHandler
	Printer      *handler.PrinterHandler
	Report       *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewOwnerRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Customers
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}

	// Products
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/low-stock", h.Product.LowStock)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
		products.POST("/:id/stock", h.Product.AdjustStock)
	}

	// Sales
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale finalization uses idempotency middleware so a double-tapped
		// button cannot produce two sales
		sales.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/cancel", h.Sale.Cancel)
		sales.GET("/:id/receipt", h.Sale.Receipt)
		sales.GET("/:id/share", h.Sale.Share)
		sales.POST("/:id/email", h.Sale.EmailReceipt)
		sales.GET("/:id/pix", h.Payment.SalePayload)
	}

	// Service orders
	serviceOrders := protected.Group("/service-orders")
	{
		serviceOrders.GET("", h.ServiceOrder.List)
		serviceOrders.POST("", h.ServiceOrder.Create)
		serviceOrders.GET("/:id", h.ServiceOrder.Get)
		serviceOrders.PUT("/:id", h.ServiceOrder.Update)
		serviceOrders.PUT("/:id/status", h.ServiceOrder.UpdateStatus)
	}

	// Warranties
	warranties := protected.Group("/warranties")
	{
		warranties.GET("", h.Warranty.List)
		warranties.POST("", h.Warranty.Issue)
		warranties.GET("/:id", h.Warranty.Get)
		warranties.GET("/:id/certificate", h.Warranty.Certificate)
		warranties.POST("/:id/email", h.Warranty.EmailCertificate)
	}

	// Payments
	payments := protected.Group("/payments")
	{
		payments.POST("/pix", h.Payment.BuildPayload)
	}

	// Reports
	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.Daily)
	}

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.Test)
		printerGroup.POST("/sales/:id", h.Printer.PrintSale)
	}

	// Staff management (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin))
	{
		users.GET("", h.Auth.ListUsers)
		users.POST("", h.Auth.CreateUser)
	}
}
