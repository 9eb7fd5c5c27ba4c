package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/purebeach/pos-api/internal/application/service"
	"github.com/purebeach/pos-api/internal/presentation/http/dto/request"
	"github.com/purebeach/pos-api/internal/presentation/http/dto/response"
)

// OrderHandler handles order submission HTTP requests.
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Submit accepts an order, records it in the daily ledger, and prints the
// ticket. On print failure the response still carries the aggregated result
// so the client keeps its pending order state and can retry.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req request.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	result, err := h.orderService.SubmitOrder(c.Request.Context(), req.ToEntity())
	if err != nil {
		response.Error(c, err)
		return
	}

	if !result.Printed {
		response.OK(c, "Order received but printing failed", gin.H{
			"result":  result,
			"warning": result.Message,
		})
		return
	}

	if !result.Logged {
		response.OK(c, "Order printed, ledger write failed", gin.H{
			"result":  result,
			"warning": result.LedgerMessage,
		})
		return
	}

	response.OK(c, "Order printed successfully", gin.H{
		"result": result,
	})
}
