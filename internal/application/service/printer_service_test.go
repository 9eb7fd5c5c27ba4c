package service

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/purebeach/pos-api/internal/domain/entity"
	"github.com/purebeach/pos-api/pkg/printer"
)

var ticketTime = time.Date(2026, 8, 28, 18, 45, 30, 0, time.Local)

func testPrinterService() *PrinterService {
	return NewPrinterService(printer.NewNullPrinter(), "none", 32, "PURE", "EUR")
}

func sampleOrder() entity.OrderRequest {
	return entity.OrderRequest{
		Seat: "A7",
		Items: []entity.OrderLine{
			{Name: "Mojito", Price: 8.00, Quantity: 1},
			{Name: "Nachos", Price: 8.00, Quantity: 2},
		},
		Total: 24.00,
	}
}

func TestFormatTicketIsDeterministic(t *testing.T) {
	s := testPrinterService()
	a := s.FormatTicket(sampleOrder(), ticketTime)
	b := s.FormatTicket(sampleOrder(), ticketTime)
	if !bytes.Equal(a, b) {
		t.Error("same order and timestamp produced different bytes")
	}
}

func TestFormatTicketSubtotal(t *testing.T) {
	s := testPrinterService()
	data := s.FormatTicket(sampleOrder(), ticketTime)

	// 8.00*1 + 8.00*2, right-aligned to 32 columns
	want := "SUBTOTAL:" + strings.Repeat(" ", 32-len("SUBTOTAL:")-len("EUR24.00")) + "EUR24.00"
	if !bytes.Contains(data, []byte(want)) {
		t.Errorf("ticket missing subtotal line %q", want)
	}
}

func TestFormatTicketLayout(t *testing.T) {
	order := sampleOrder()
	order.Items[1].CustomText = "no jalapenos"
	order.Items[0].Description = "House special"
	order.Notes = "table by the water"
	order.PayByCard = true

	s := testPrinterService()
	data := s.FormatTicket(order, ticketTime)

	// seat is printed in emphasized mode, reset right after
	seatSeq := append([]byte{printer.ESC, '!', printer.ModeEmphasis}, []byte("A7")...)
	seatSeq = append(seatSeq, printer.ESC, '!', printer.ModeNormal)
	if !bytes.Contains(data, seatSeq) {
		t.Error("seat is not printed in emphasized mode")
	}

	for _, want := range []string{
		"Time: 28-08-2026 18:45:30",
		"ITEMS:",
		"1x Mojito",
		"2x Nachos [no jalapenos]",
		"  House special",
		"PAYMENT: CARD",
		"Notes: table by the water",
		"Thank you!",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("ticket missing %q", want)
		}
	}

	if !bytes.Contains(data, bytes.Repeat([]byte{'='}, 32)) {
		t.Error("ticket missing '=' divider")
	}
	if !bytes.Contains(data, bytes.Repeat([]byte{'-'}, 32)) {
		t.Error("ticket missing '-' divider")
	}

	// three trailing feeds then a full cut
	if !bytes.HasSuffix(data, []byte{printer.LF, printer.LF, printer.LF, printer.GS, 'V', 0x00}) {
		t.Errorf("ticket does not end with feed+cut: %v", data[len(data)-6:])
	}
}

func TestFormatTicketOmitsEmptyNotes(t *testing.T) {
	s := testPrinterService()
	data := s.FormatTicket(sampleOrder(), ticketTime)
	if bytes.Contains(data, []byte("Notes:")) {
		t.Error("notes line rendered for an order without notes")
	}
}

func TestFormatTicketEmptyOrderStillRenders(t *testing.T) {
	s := testPrinterService()
	data := s.FormatTicket(entity.OrderRequest{Seat: "B1"}, ticketTime)

	for _, want := range []string{"PURE", "ITEMS:", "PAYMENT: CASH", "Thank you!"} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("empty order ticket missing %q", want)
		}
	}
	if !bytes.HasSuffix(data, []byte{printer.GS, 'V', 0x00}) {
		t.Error("empty order ticket is not cut")
	}
}

func TestFormatTicketEuroCurrency(t *testing.T) {
	s := NewPrinterService(printer.NewNullPrinter(), "none", 32, "PURE", "€")
	data := s.FormatTicket(sampleOrder(), ticketTime)

	// the euro glyph must come out as the single CP858 byte 0xD5
	if !bytes.Contains(data, []byte{0xD5, '2', '4', '.', '0', '0'}) {
		t.Error("euro amounts were not encoded to CP858")
	}
	if bytes.Contains(data, []byte("€")) {
		t.Error("raw UTF-8 euro leaked into the ticket")
	}
}

func TestGetStatus(t *testing.T) {
	s := testPrinterService()
	status := s.GetStatus()
	if status.Configured {
		t.Error("null printer reported as configured")
	}
	if status.Connected {
		t.Error("null printer reported as connected")
	}
	if status.Type != "none" {
		t.Errorf("Type = %q, want none", status.Type)
	}
}
