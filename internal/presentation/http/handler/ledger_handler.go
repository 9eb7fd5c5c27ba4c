package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purebeach/pos-api/internal/infrastructure/ledger"
	"github.com/purebeach/pos-api/internal/presentation/http/dto/response"
	"github.com/purebeach/pos-api/pkg/pagination"
)

// LedgerHandler exposes the daily order ledger to operators.
type LedgerHandler struct {
	ledger *ledger.Ledger
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(l *ledger.Ledger) *LedgerHandler {
	return &LedgerHandler{ledger: l}
}

// GetDay returns the parsed ledger for one day (path param "date" as
// YYYY-MM-DD) with recomputed cash/card/daily totals and paginated rows.
func (h *LedgerHandler) GetDay(c *gin.Context) {
	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), time.Local)
	if err != nil {
		response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	report, err := h.ledger.ReadDay(day)
	if err != nil {
		if errors.Is(err, ledger.ErrNoLedger) {
			response.NotFound(c, "No orders recorded for "+c.Param("date"))
			return
		}
		response.Error(c, err)
		return
	}

	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}
	rows := pagination.Page(report.Rows, params)

	response.OK(c, "Ledger retrieved", gin.H{
		"date":        report.Date,
		"orders":      report.Orders,
		"cash_total":  report.CashTotal,
		"card_total":  report.CardTotal,
		"daily_total": report.DailyTotal,
		"rows":        rows,
	})
}
