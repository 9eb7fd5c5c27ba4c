package service

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/purebeach/pos-api/internal/domain/entity"
	"github.com/purebeach/pos-api/internal/infrastructure/ledger"
	"github.com/purebeach/pos-api/pkg/apperror"
	"github.com/purebeach/pos-api/pkg/printer"
)

// OrderService orchestrates one order submission: record it in the daily
// ledger, format the ticket, and deliver it to the printer. The ledger write
// and the print attempt are independent: a failure in one never suppresses
// the other, and the result carries both outcomes.
type OrderService struct {
	ledger         *ledger.Ledger
	printerService *PrinterService
	now            func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(l *ledger.Ledger, p *PrinterService) *OrderService {
	return &OrderService{ledger: l, printerService: p, now: time.Now}
}

// SubmitOrder validates the order, appends it to the daily ledger, and
// prints the ticket. Malformed orders are rejected before any I/O. The
// returned PrintResult aggregates both the ledger and print outcomes;
// a non-nil error is returned only for rejected input.
func (s *OrderService) SubmitOrder(ctx context.Context, order entity.OrderRequest) (*entity.PrintResult, error) {
	order = order.Normalize()
	if err := order.Validate(); err != nil {
		return nil, apperror.NewAppError(http.StatusUnprocessableEntity, err.Error())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The declared total is trusted as-is; a mismatch against the computed
	// subtotal is logged for operators rather than corrected.
	if sub := order.Subtotal(); math.Abs(sub-order.Total) > 0.005 {
		log.Printf("Order total mismatch (seat %s): declared %.2f, items sum to %.2f",
			order.Seat, order.Total, sub)
	}

	result := &entity.PrintResult{Logged: true}

	if err := s.ledger.Append(order); err != nil {
		log.Printf("Ledger write failed (seat %s): %v", order.Seat, err)
		result.Logged = false
		result.LedgerMessage = err.Error()
	}

	data := s.printerService.FormatTicket(order, s.now())
	if err := s.printerService.Print(data); err != nil {
		log.Printf("Print failed (seat %s): %v", order.Seat, err)
		result.Reason = classifyPrintError(err)
		result.Message = err.Error()
		return result, nil
	}

	result.Printed = true
	return result, nil
}

func classifyPrintError(err error) entity.FailureReason {
	var timeoutErr *printer.TimeoutError
	var unreachableErr *printer.UnreachableError
	switch {
	case errors.As(err, &timeoutErr):
		return entity.FailureTimeout
	case errors.As(err, &unreachableErr):
		return entity.FailureUnreachable
	default:
		return entity.FailureIO
	}
}
