package finance

import (
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

func parseOptionalDate(raw *string, loc *time.Location) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := shared.ParseDate(*raw, loc)
	if err != nil {
		return nil, err
	}
	if t.IsZero() {
		return nil, shared.NewInvalidParameter("Invalid date", *raw)
	}
	return &t, nil
}

func coerceAmount(v any) (finance.Amount, error) {
	amount, ok := finance.CoerceAmount(v)
	if !ok {
		return finance.Amount{}, shared.NewInvalidParameter("Amount must be a valid number", v)
	}
	return amount, nil
}

func coerceOptionalAmount(v any) (*finance.Amount, error) {
	if v == nil {
		return nil, nil
	}
	amount, err := coerceAmount(v)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func isMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func anyMissing(values ...any) bool {
	for _, v := range values {
		if isMissing(v) {
			return true
		}
	}
	return false
}
