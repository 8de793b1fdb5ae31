package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an amount in Colombian pesos. The API sends amounts as JSON
// numbers or numeric strings; both decode.
type Money struct {
	decimal.Decimal
}

func NewMoney(v int64) Money { return Money{decimal.NewFromInt(v)} }

func MoneyFromDecimal(d decimal.Decimal) Money { return Money{d} }

// ParseMoney parses user input such as "12000", "12000,50" or "$ 12.000".
// A dot followed by exactly three digits is treated as a thousands separator.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	if strings.Count(s, ".") > 0 && isGrouped(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{d}, nil
}

func isGrouped(s string) bool {
	intPart := s
	if i := strings.Index(s, ","); i >= 0 {
		intPart = s[:i]
	}
	groups := strings.Split(intPart, ".")
	if len(groups) < 2 || len(groups[0]) == 0 || len(groups[0]) > 3 {
		return false
	}
	for _, g := range groups[1:] {
		if len(g) != 3 {
			return false
		}
	}
	return true
}

func (m Money) Add(o Money) Money { return Money{m.Decimal.Add(o.Decimal)} }
func (m Money) Sub(o Money) Money { return Money{m.Decimal.Sub(o.Decimal)} }

// Float is used for ratios only, never for stored amounts.
func (m Money) Float() float64 {
	f, _ := m.Decimal.Float64()
	return f
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		m.Decimal = decimal.Zero
		return nil
	}
	return m.Decimal.UnmarshalJSON(b)
}
