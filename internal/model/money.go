package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount. Units carries the whole units as a
// string so no precision is lost in transit; Nanos (0..999,999,999) holds
// the fractional part in billionths of a unit.
type Money struct {
	CurrencyCode string `json:"currency_code"`
	Units        string `json:"units"`
	Nanos        int64  `json:"nanos,omitempty"`
}

const nanosPerUnit = 1_000_000_000

// NewMoney builds a Money from a decimal amount, splitting it into whole
// units and nanos.
func NewMoney(amount decimal.Decimal, currency string) Money {
	units := amount.Truncate(0)
	nanos := amount.Sub(units).Mul(decimal.NewFromInt(nanosPerUnit)).Round(0).IntPart()
	if nanos >= nanosPerUnit {
		units = units.Add(decimal.NewFromInt(1))
		nanos -= nanosPerUnit
	}
	return Money{
		CurrencyCode: currency,
		Units:        units.String(),
		Nanos:        nanos,
	}
}

// NewMoneyFromFloat is a convenience wrapper for amounts that arrive as
// float64 (e.g. post-rounding calculator output).
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// Amount reconstructs the exact decimal value.
func (m Money) Amount() (decimal.Decimal, error) {
	if m.CurrencyCode == "" {
		return decimal.Zero, fmt.Errorf("money has no currency code")
	}
	units, err := decimal.NewFromString(m.Units)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse money units %q: %w", m.Units, err)
	}
	nanos := decimal.New(m.Nanos, -9)
	return units.Add(nanos), nil
}

func (m Money) String() string {
	amount, err := m.Amount()
	if err != nil {
		return m.Units + " " + m.CurrencyCode
	}
	return amount.String() + " " + m.CurrencyCode
}
