package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	MDL Currency = "MDL"
	EUR Currency = "EUR"
	USD Currency = "USD"
)

// DefaultCurrency is reported for totals of an empty cart.
const DefaultCurrency = MDL

func (c Currency) Valid() bool {
	switch c {
	case MDL, EUR, USD:
		return true
	}
	return false
}

// Money is an immutable amount in a single currency. Arithmetic never converts.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

func New(amount int64, c Currency) Money {
	return Money{Amount: decimal.NewFromInt(amount), Currency: c}
}

func Zero(c Currency) Money {
	return Money{Amount: decimal.Zero, Currency: c}
}

// Mul scales the amount by qty, keeping the currency.
func (m Money) Mul(qty int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(qty))), Currency: m.Currency}
}

// Add sums amounts and keeps the receiver's currency. Callers own currency homogeneity.
func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount.Add(o.Amount), Currency: m.Currency}
}

func (m Money) IsZero() bool { return m.Amount.IsZero() }

func (m Money) Equal(o Money) bool {
	return m.Currency == o.Currency && m.Amount.Equal(o.Amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
