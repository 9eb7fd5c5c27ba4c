package ledger

import (
	"errors"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNoLedger is returned by ReadDay when no file exists for the day.
var ErrNoLedger = errors.New("ledger: no records for day")

// Row is one parsed ledger record, mirroring the CSV columns. Quantity and
// amount stay as written so synthetic rows (blank quantity) round-trip.
type Row struct {
	Timestamp     string `json:"timestamp"`
	Seat          string `json:"seat"`
	ItemName      string `json:"item_name"`
	Quantity      string `json:"quantity"`
	Price         string `json:"price"`
	PaymentMethod string `json:"payment_method"`
}

// DayReport is a parsed view of one day's ledger with totals recomputed from
// the ORDER TOTAL rows it contains.
type DayReport struct {
	Date       string  `json:"date"`
	Orders     int     `json:"orders"`
	CashTotal  float64 `json:"cash_total"`
	CardTotal  float64 `json:"card_total"`
	DailyTotal float64 `json:"daily_total"`
	Rows       []Row   `json:"rows"`
}

// ReadDay loads and parses the ledger file for the given day. Summary rows
// are excluded from Rows; totals are recomputed so the report stays correct
// even against files written by older, append-only variants.
func (l *Ledger) ReadDay(day time.Time) (*DayReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	path := l.FilePath(day)
	if _, err := os.Stat(path); err != nil {
		return nil, ErrNoLedger
	}
	records, err := readOrderRows(path)
	if err != nil {
		return nil, err
	}

	report := &DayReport{Date: day.Format("2006-01-02")}
	for _, rec := range records {
		report.Rows = append(report.Rows, Row{
			Timestamp:     rec[0],
			Seat:          rec[1],
			ItemName:      rec[2],
			Quantity:      rec[3],
			Price:         rec[4],
			PaymentMethod: rec[5],
		})
		if rec[2] == RowOrderTotal {
			report.Orders++
		}
	}

	cash, card := sumOrderTotals(records)
	report.CashTotal = round2(cash)
	report.CardTotal = round2(card)
	report.DailyTotal = round2(cash.Add(card))
	return report, nil
}

func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
