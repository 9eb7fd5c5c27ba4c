package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/purebeach/pos-api/internal/domain/entity"
	"github.com/purebeach/pos-api/pkg/printer"
)

// PrinterService handles ticket formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	codec       *printer.Codec
	printerType string
	width       int
	label       string
	currency    string
}

// NewPrinterService creates a new printer service. label is the venue name
// printed at the top of every ticket and currency prefixes all amounts.
func NewPrinterService(p printer.Printer, printerType string, width int, label, currency string) *PrinterService {
	if width <= 0 {
		width = 32
	}
	if label == "" {
		label = "PURE"
	}
	if currency == "" {
		currency = "EUR"
	}
	return &PrinterService{
		printer:     p,
		codec:       printer.NewCP858Codec(),
		printerType: printerType,
		width:       width,
		label:       label,
		currency:    currency,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// Print sends formatted ticket bytes to the printer. Single attempt; retry
// policy belongs to the caller.
func (s *PrinterService) Print(data []byte) error {
	return s.printer.Print(data)
}

// TestPrint formats and prints a sample ticket.
// Returns the ticket bytes so the handler can report what was sent.
func (s *PrinterService) TestPrint() ([]byte, error) {
	order := entity.OrderRequest{
		Seat: "A0",
		Items: []entity.OrderLine{
			{Name: "Test Item 1", Price: 10.00, Quantity: 1},
			{Name: "Test Item 2", Price: 5.00, Quantity: 2},
		},
		Total: 20.00,
		Notes: "printer test page",
	}
	data := s.FormatTicket(order, time.Now())
	if err := s.printer.Print(data); err != nil {
		return data, fmt.Errorf("test print failed: %w", err)
	}
	return data, nil
}

// FormatTicket converts an order into ESC/POS bytes. Pure: the same order
// and timestamp always produce identical bytes.
func (s *PrinterService) FormatTicket(o entity.OrderRequest, now time.Time) []byte {
	doc := printer.NewDocument(s.width, s.codec)
	doc.SetCodePage(printer.CodePage858)

	// Venue label left, seat right-aligned, seat in bold double-size print.
	pad := doc.Width() - len(s.label) - len(o.Seat)
	if pad < 1 {
		pad = 1
	}
	doc.Write(s.label + strings.Repeat(" ", pad)).
		Mode(printer.ModeEmphasis).
		Write(o.Seat).
		Mode(printer.ModeNormal).
		LineFeed()

	doc.Separator('=')
	doc.TextF("Time: %s", now.Format("02-01-2006 15:04:05"))
	doc.LineFeed()
	doc.Text("ITEMS:")
	doc.Text("------")

	for _, item := range o.Items {
		name := item.Name
		if item.CustomText != "" {
			name += " [" + item.CustomText + "]"
		}
		doc.ItemLine(item.Quantity, name, s.amount(item.Total()))
		if item.Description != "" {
			doc.Mode(printer.ModeSmall).
				Text("  " + item.Description).
				Mode(printer.ModeNormal)
		}
	}

	doc.LineFeed()
	doc.Separator('-')
	doc.KeyValue("SUBTOTAL:", s.amount(o.Subtotal()))
	doc.Mode(printer.ModeBold).
		KeyValue("TOTAL:", s.amount(o.Total)).
		Mode(printer.ModeNormal)
	doc.LineFeed()
	doc.TextF("PAYMENT: %s", o.PaymentMethod())
	if o.Notes != "" {
		doc.LineFeed()
		doc.TextF("Notes: %s", o.Notes)
	}
	doc.Separator('=')
	doc.Text("Thank you!")

	doc.FeedLines(3).Cut()
	return doc.Bytes()
}

func (s *PrinterService) amount(v float64) string {
	return fmt.Sprintf("%s%.2f", s.currency, v)
}
