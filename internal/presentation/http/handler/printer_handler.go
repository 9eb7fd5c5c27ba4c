package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/purebeach/pos-api/internal/application/service"
	"github.com/purebeach/pos-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles printer-related HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// TestPrint sends a test ticket to the printer.
func (h *PrinterHandler) TestPrint(c *gin.Context) {
	data, err := h.printerService.TestPrint()
	if err != nil {
		// The ticket was still generated; report what was attempted.
		response.OK(c, "Test ticket generated but printing failed", gin.H{
			"bytes":   len(data),
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Test ticket sent to printer", gin.H{
		"bytes": len(data),
	})
}
