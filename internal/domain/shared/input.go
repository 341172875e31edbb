package shared

import (
	"strings"
	"time"
)

// RequiredFieldsMessage is returned when a create body lacks a required field
const RequiredFieldsMessage = "Please provide all required fields"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps or bare dates. Values without a
// zone are read in loc. An empty string yields the zero time.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, NewInvalidParameter("Invalid date", raw)
}
