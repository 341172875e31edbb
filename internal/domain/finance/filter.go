package finance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// MinYear is the earliest year accepted in a year filter
const MinYear = 2000

// AllValues disables a filter dimension when passed as its value
const AllValues = "all"

// FilterParams are the raw query parameters of a list request
type FilterParams struct {
	Year     string
	Function string
	Type     string
}

// DateRange is a closed interval of timestamps
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies within the closed interval
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// YearRange returns [Jan 1 00:00:00, Dec 31 23:59:59] of year in loc
func YearRange(year int, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.UTC
	}
	return DateRange{
		From: time.Date(year, time.January, 1, 0, 0, 0, 0, loc),
		To:   time.Date(year, time.December, 31, 23, 59, 59, 0, loc),
	}
}

// Filter is a parsed list predicate. Zero-valued fields place no constraint.
type Filter struct {
	Year      int
	DateRange *DateRange
	Function  string
	Type      string
}

// IsEmpty returns true if the filter matches everything
func (f Filter) IsEmpty() bool {
	return f.DateRange == nil && f.Function == "" && f.Type == ""
}

// TypeValidator reports whether a raw type value is valid for a resource
type TypeValidator func(string) bool

// RecordTypeValidator accepts offering, donation and church_tax
func RecordTypeValidator(s string) bool {
	return RecordType(s).IsValid()
}

// DonationTypeValidator accepts income and expenditure
func DonationTypeValidator(s string) bool {
	return DonationType(s).IsValid()
}

// ParseYear validates a year parameter against [MinYear, now.Year()+1]
func ParseYear(raw string, now time.Time) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, shared.NewInvalidParameter("Invalid year parameter", raw)
	}
	maxYear := now.Year() + 1
	if year < MinYear || year > maxYear {
		return 0, shared.NewInvalidParameter(fmt.Sprintf("Year must be between %d and %d", MinYear, maxYear), year)
	}
	return year, nil
}

// ParseFilter turns list query parameters into a Filter. The year window is
// computed in loc. validType may be nil for resources without a type field, in
// which case the type parameter is ignored.
func ParseFilter(p FilterParams, now time.Time, loc *time.Location, validType TypeValidator) (Filter, error) {
	var f Filter

	if p.Year != "" && p.Year != AllValues {
		year, err := ParseYear(p.Year, now)
		if err != nil {
			return Filter{}, err
		}
		r := YearRange(year, loc)
		f.Year = year
		f.DateRange = &r
	}

	if p.Function != "" && p.Function != AllValues {
		f.Function = p.Function
	}

	if validType != nil && p.Type != "" && p.Type != AllValues {
		if !validType(p.Type) {
			return Filter{}, shared.NewInvalidParameter("Invalid type parameter", p.Type)
		}
		f.Type = p.Type
	}

	return f, nil
}

// SortOrder is the direction of a years listing
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder parses an order parameter. Empty means descending.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return SortDesc, nil
	case string(SortAsc):
		return SortAsc, nil
	case string(SortDesc):
		return SortDesc, nil
	}
	return "", shared.NewInvalidParameter("Order must be asc or desc", raw)
}
