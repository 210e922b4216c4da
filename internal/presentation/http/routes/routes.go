package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sandrok/posify-api/internal/config"
	domainRepo "github.com/sandrok/posify-api/internal/domain/repository"
	"github.com/sandrok/posify-api/internal/presentation/http/handler"
	"github.com/sandrok/posify-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product  *handler.ProductHandler
	Shift    *handler.ShiftHandler
	Receipt  *handler.ReceiptHandler
	Campaign *handler.CampaignHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
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

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerProductRoutes(v1, h)
		registerShiftRoutes(v1, h)
		registerReceiptRoutes(v1, h, deps)
		registerCampaignRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id", h.Product.UpdatePrice)
	}
}

func registerShiftRoutes(v1 *gin.RouterGroup, h *Handlers) {
	shifts := v1.Group("/shifts")
	{
		shifts.POST("", h.Shift.Create)
		shifts.GET("/:id", h.Shift.Get)
		shifts.PATCH("/:id/close", h.Shift.Close)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	receipts := v1.Group("/receipts")
	{
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.POST("/:id/products", h.Receipt.AddProduct)
		receipts.POST("/:id/combos", h.Receipt.AddCombo)
		receipts.POST("/:id/gifts", h.Receipt.AddGift)
		receipts.DELETE("/:id/items/:itemId", h.Receipt.DeleteItem)

		// Payment replays are safe to retry with an Idempotency-Key
		receipts.POST("/:id/pay",
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Receipt.Pay)
	}
}

func registerCampaignRoutes(v1 *gin.RouterGroup, h *Handlers) {
	campaigns := v1.Group("/campaigns")
	{
		campaigns.POST("/discount", h.Campaign.CreateDiscount)
		campaigns.POST("/combo", h.Campaign.CreateCombo)
		campaigns.POST("/buy-n-get-n", h.Campaign.CreateBuyNGetN)
		campaigns.POST("/receipt-discount", h.Campaign.CreateReceiptDiscount)
		campaigns.POST("/combo/:id/products", h.Campaign.AddProductToCombo)
		campaigns.POST("/discount/:id/products/:productId", h.Campaign.AddProductToDiscount)
		campaigns.DELETE("/discount/:id/products/:productId", h.Campaign.RemoveProductFromDiscount)
		campaigns.GET("", h.Campaign.List)
		campaigns.GET("/:id", h.Campaign.Get)
		campaigns.DELETE("/:id", h.Campaign.Delete)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/x", h.Report.XReport)
		reports.GET("/z/:shiftId", h.Report.ZReport)
	}
}
