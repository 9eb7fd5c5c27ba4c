package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/purebeach/pos-api/internal/application/service"
	"github.com/purebeach/pos-api/internal/config"
	"github.com/purebeach/pos-api/internal/infrastructure/ledger"
	"github.com/purebeach/pos-api/internal/presentation/http/handler"
	"github.com/purebeach/pos-api/internal/presentation/http/routes"
	"github.com/purebeach/pos-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the daily order ledger
	orderLedger := ledger.New(cfg.Ledger.Dir)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.Timeout,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	printerService := service.NewPrinterService(
		thermalPrinter,
		cfg.Printer.Type,
		cfg.Printer.Width,
		cfg.Receipt.Label,
		cfg.Receipt.Currency,
	)
	orderService := service.NewOrderService(orderLedger, printerService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Printer: handler.NewPrinterHandler(printerService),
		Ledger:  handler.NewLedgerHandler(orderLedger),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Printer: %s (%s)", cfg.Printer.Type, cfg.Printer.Address)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
