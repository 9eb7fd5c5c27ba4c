// Package ledger persists every submitted order to an append-only daily CSV
// file and keeps running cash/card/daily totals accurate across submissions.
//
// Each write rebuilds the day's file: prior item and ORDER TOTAL rows are
// kept, prior summary rows are dropped, the new order's rows are appended,
// totals are recomputed from all ORDER TOTAL rows, and the result replaces
// the live file with an atomic rename. Rebuilding instead of blindly
// appending is what keeps DAILY TOTAL from double-counting as orders
// accumulate.
package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/purebeach/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CSV column layout, one file per calendar day (local time).
var header = []string{"timestamp", "seat", "item_name", "quantity", "price", "payment_method"}

// Synthetic row markers in the item_name column.
const (
	RowOrderTotal = "ORDER TOTAL"
	RowCashTotal  = "CASH TOTAL"
	RowCardTotal  = "CARD TOTAL"
	RowDailyTotal = "DAILY TOTAL"
)

// Ledger writes per-day order files under a base directory. The whole
// read-rewrite-rename cycle runs under a process-wide mutex: two concurrent
// submissions on the same day would otherwise race between the read and the
// rename and silently drop one order's rows.
type Ledger struct {
	dir string
	now func() time.Time
	mu  sync.Mutex
}

// New creates a ledger rooted at dir. The directory is created on first write.
func New(dir string) *Ledger {
	return &Ledger{dir: dir, now: time.Now}
}

// NewWithClock creates a ledger with an injectable clock.
func NewWithClock(dir string, now func() time.Time) *Ledger {
	return &Ledger{dir: dir, now: now}
}

// FilePath returns the ledger file for the given day, e.g.
// "<dir>/orders_2026-08-28.csv".
func (l *Ledger) FilePath(day time.Time) string {
	return filepath.Join(l.dir, fmt.Sprintf("orders_%s.csv", day.Format("2006-01-02")))
}

// Append records one submitted order: one row per line item with a shared
// submission timestamp, one ORDER TOTAL row carrying the declared total and
// payment method, and freshly recomputed CASH/CARD/DAILY TOTAL rows.
func (l *Ledger) Append(order entity.OrderRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("ledger: create directory %s: %w", l.dir, err)
	}

	now := l.now()
	path := l.FilePath(now)

	rows, err := readOrderRows(path)
	if err != nil {
		return err
	}

	stamp := now.Format("2006-01-02 15:04:05")
	for _, item := range order.Items {
		rows = append(rows, []string{
			stamp,
			order.Seat,
			item.Name,
			fmt.Sprintf("%d", item.Quantity),
			formatAmount(decimal.NewFromFloat(item.Price)),
			"",
		})
	}
	rows = append(rows, []string{
		stamp,
		order.Seat,
		RowOrderTotal,
		"",
		formatAmount(decimal.NewFromFloat(order.Total)),
		order.PaymentMethod(),
	})

	cash, card := sumOrderTotals(rows)
	rows = append(rows,
		[]string{"", "", RowCashTotal, "", formatAmount(cash), ""},
		[]string{"", "", RowCardTotal, "", formatAmount(card), ""},
		[]string{"", "", RowDailyTotal, "", formatAmount(cash.Add(card)), ""},
	)

	return replaceFile(path, rows)
}

// readOrderRows loads the existing day file, keeping item and ORDER TOTAL
// rows and dropping previously written summary rows. A missing file is an
// empty day, not an error.
func readOrderRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ledger: read %s: %w", path, err)
	}

	var rows [][]string
	for i, rec := range records {
		if i == 0 || len(rec) != len(header) {
			continue // header or malformed row
		}
		switch rec[2] {
		case RowCashTotal, RowCardTotal, RowDailyTotal:
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// sumOrderTotals recomputes the day's cash and card totals from ORDER TOTAL
// rows. Malformed amounts are skipped rather than failing the write.
func sumOrderTotals(rows [][]string) (cash, card decimal.Decimal) {
	for _, rec := range rows {
		if rec[2] != RowOrderTotal {
			continue
		}
		amt, err := decimal.NewFromString(rec[4])
		if err != nil {
			continue
		}
		switch rec[5] {
		case "CASH":
			cash = cash.Add(amt)
		case "CARD":
			card = card.Add(amt)
		}
	}
	return cash, card
}

// replaceFile writes header + rows to a temp file and atomically renames it
// over the live ledger, so a concurrent reader never sees a partial file.
func replaceFile(path string, rows [][]string) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("ledger: create %s: %w", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("ledger: write header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("ledger: write rows: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("ledger: close %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("ledger: replace %s: %w", path, err)
	}
	return nil
}

func formatAmount(d decimal.Decimal) string {
	return d.Round(2).StringFixed(2)
}
