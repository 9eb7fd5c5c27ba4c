package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Validation errors returned by OrderRequest.Validate.
var (
	ErrMissingSeat     = errors.New("order: seat is required")
	ErrInvalidQuantity = errors.New("order: line quantity must be at least 1")
)

// OrderLine is a single item on a submitted order. Name may already embed a
// chosen option in parentheses (e.g. "Coffee (Sweet)") and Price is the unit
// price inclusive of any option adjustment; option resolution happens in the
// menu layer before the line reaches this package.
type OrderLine struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CustomText  string  `json:"customText,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Total returns Price × Quantity rounded to 2 decimals.
func (l OrderLine) Total() float64 {
	return decimal.NewFromFloat(l.Price).
		Mul(decimal.NewFromInt(int64(l.Quantity))).
		Round(2).
		InexactFloat64()
}

// OrderRequest is the immutable value object handed to the core at submission
// time. Total is declared by the caller and is not re-derived from Items; a
// mismatch is tolerated and logged, never corrected.
type OrderRequest struct {
	Seat      string      `json:"seat"`
	Items     []OrderLine `json:"items"`
	Total     float64     `json:"total"`
	Notes     string      `json:"notes,omitempty"`
	PayByCard bool        `json:"payByCard"`
}

// PaymentMethod resolves the payment flag to the ledger/receipt token.
func (o OrderRequest) PaymentMethod() string {
	if o.PayByCard {
		return "CARD"
	}
	return "CASH"
}

// Subtotal sums Price × Quantity over all lines, rounded to 2 decimals.
func (o OrderRequest) Subtotal() float64 {
	sum := decimal.Zero
	for _, l := range o.Items {
		sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum.Round(2).InexactFloat64()
}

// Normalize returns a copy of the order with non-positive-quantity lines
// removed. A line decremented to zero is dropped entirely, never persisted.
func (o OrderRequest) Normalize() OrderRequest {
	items := make([]OrderLine, 0, len(o.Items))
	for _, l := range o.Items {
		if l.Quantity >= 1 {
			items = append(items, l)
		}
	}
	o.Items = items
	return o
}

// Validate rejects malformed orders before any I/O is attempted.
func (o OrderRequest) Validate() error {
	if o.Seat == "" {
		return ErrMissingSeat
	}
	for _, l := range o.Items {
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
