package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purebeach/pos-api/internal/config"
	"github.com/purebeach/pos-api/internal/presentation/http/handler"
	"github.com/purebeach/pos-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order   *handler.OrderHandler
	Printer *handler.PrinterHandler
	Ledger  *handler.LedgerHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		orders := v1.Group("/orders")
		{
			orders.POST("/print", h.Order.Submit)
		}

		printer := v1.Group("/printer")
		{
			printer.GET("/status", h.Printer.GetStatus)
			printer.POST("/test", h.Printer.TestPrint)
		}

		ledger := v1.Group("/ledger")
		{
			ledger.GET("/:date", h.Ledger.GetDay)
		}
	}

	return router
}
