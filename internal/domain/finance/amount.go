package finance

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a monetary amount as read from or written to the store.
// A stored value that is not numeric does not fail the read: the amount is
// marked invalid and keeps the raw text so aggregations can skip and report it.
type Amount struct {
	value decimal.Decimal
	raw   string
	valid bool
}

// NewAmount creates a valid amount from a decimal
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, valid: true}
}

// NewAmountFromInt creates a valid amount from an integer
func NewAmountFromInt(v int64) Amount {
	return NewAmount(decimal.NewFromInt(v))
}

// NewAmountFromString parses a decimal string. Surrounding whitespace is ignored.
func NewAmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return NewAmount(d), nil
}

// InvalidAmount wraps a non-numeric raw value
func InvalidAmount(raw string) Amount {
	return Amount{raw: raw}
}

// ZeroAmount returns a valid zero amount
func ZeroAmount() Amount {
	return NewAmount(decimal.Zero)
}

// CoerceAmount converts a loosely typed request value (JSON number or numeric
// string) into an amount. It returns false when the value is not convertible.
func CoerceAmount(v any) (Amount, bool) {
	switch t := v.(type) {
	case nil:
		return Amount{}, false
	case Amount:
		return t, t.valid
	case decimal.Decimal:
		return NewAmount(t), true
	case float64:
		return NewAmount(decimal.NewFromFloat(t)), true
	case float32:
		return NewAmount(decimal.NewFromFloat32(t)), true
	case int:
		return NewAmountFromInt(int64(t)), true
	case int64:
		return NewAmountFromInt(t), true
	case json.Number:
		a, err := NewAmountFromString(t.String())
		return a, err == nil
	case string:
		if strings.TrimSpace(t) == "" {
			return Amount{}, false
		}
		a, err := NewAmountFromString(t)
		return a, err == nil
	default:
		return Amount{}, false
	}
}

// Decimal returns the numeric value. It is zero for an invalid amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsValid returns true if the amount holds a number
func (a Amount) IsValid() bool {
	return a.valid
}

// Raw returns the stored text of an invalid amount
func (a Amount) Raw() string {
	return a.raw
}

// IsNegative returns true for a valid amount below zero
func (a Amount) IsNegative() bool {
	return a.valid && a.value.IsNegative()
}

// Add returns the sum of two valid amounts
func (a Amount) Add(other Amount) Amount {
	return NewAmount(a.value.Add(other.value))
}

// Sub returns the difference of two valid amounts
func (a Amount) Sub(other Amount) Amount {
	return NewAmount(a.value.Sub(other.value))
}

// Equal compares two amounts numerically
func (a Amount) Equal(other Amount) bool {
	if a.valid != other.valid {
		return false
	}
	if !a.valid {
		return a.raw == other.raw
	}
	return a.value.Equal(other.value)
}

// String returns the decimal text, or the raw text for an invalid amount
func (a Amount) String() string {
	if !a.valid {
		return a.raw
	}
	return a.value.String()
}

// MarshalJSON writes a valid amount as a bare JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return json.Marshal(a.raw)
	}
	return []byte(a.value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. Anything else
// yields an invalid amount rather than an error.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = Amount{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data)
	}
	if parsed, err := NewAmountFromString(s); err == nil {
		*a = parsed
		return nil
	}
	*a = InvalidAmount(s)
	return nil
}

// Value implements driver.Valuer
func (a Amount) Value() (driver.Value, error) {
	if !a.valid {
		return nil, fmt.Errorf("cannot store non-numeric amount %q", a.raw)
	}
	return a.value.String(), nil
}

// Scan implements sql.Scanner
func (a *Amount) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*a = InvalidAmount("")
	case int64:
		*a = NewAmountFromInt(v)
	case float64:
		*a = NewAmount(decimal.NewFromFloat(v))
	case []byte:
		a.scanString(string(v))
	case string:
		a.scanString(v)
	default:
		*a = InvalidAmount(fmt.Sprint(v))
	}
	return nil
}

func (a *Amount) scanString(s string) {
	if parsed, err := NewAmountFromString(s); err == nil {
		*a = parsed
		return
	}
	*a = InvalidAmount(s)
}
