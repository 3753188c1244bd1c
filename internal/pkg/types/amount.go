package types

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal quantity expressed in a chain's display unit (e.g., BTC).
//
// Unlike decimal.Decimal, which encodes as a quoted string by default, Amount is
// encoded as a bare JSON number (e.g., 0.5) so consumers can read it as a numeric
// field. Both quoted and unquoted numbers are accepted when decoding.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d as an Amount.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON encodes the amount as an unquoted JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalJSON decodes a JSON number or numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}
