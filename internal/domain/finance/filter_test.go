package finance_test

import (
	"errors"
	"testing"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func TestParseYear(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		want     int
		wantErr  bool
		message  string
		received any
	}{
		{name: "floor accepted", raw: "2000", want: 2000},
		{name: "2019 accepted", raw: "2019", want: 2019},
		{name: "next year accepted", raw: "2026", want: 2026},
		{name: "below floor rejected", raw: "1999", wantErr: true, message: "Year must be between 2000 and 2026", received: 1999},
		{name: "two years ahead rejected", raw: "2027", wantErr: true, message: "Year must be between 2000 and 2026", received: 2027},
		{name: "non numeric rejected", raw: "abcd", wantErr: true, message: "Invalid year parameter", received: "abcd"},
		{name: "empty rejected", raw: "", wantErr: true, message: "Invalid year parameter", received: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := finance.ParseYear(tt.raw, fixedNow)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, year)
				return
			}
			require.Error(t, err)
			de, ok := shared.AsDomainError(err)
			require.True(t, ok)
			assert.Equal(t, shared.CodeInvalidParameter, de.Code)
			assert.Equal(t, tt.message, de.Message)
			assert.Equal(t, tt.received, de.Received)
		})
	}
}

func TestYearRange_Boundaries(t *testing.T) {
	r := finance.YearRange(2024, time.UTC)

	assert.True(t, r.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.True(t, r.Contains(time.Date(2024, 7, 4, 12, 0, 0, 0, time.UTC)))

	assert.False(t, r.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestYearRange_UsesLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	r := finance.YearRange(2024, loc)

	assert.Equal(t, loc, r.From.Location())
	// midnight Jan 1 IST is still Dec 31 in UTC
	assert.Equal(t, 2023, r.From.UTC().Year())
}

func TestParseFilter(t *testing.T) {
	t.Run("empty params match everything", func(t *testing.T) {
		f, err := finance.ParseFilter(finance.FilterParams{}, fixedNow, time.UTC, finance.RecordTypeValidator)
		require.NoError(t, err)
		assert.True(t, f.IsEmpty())
	})

	t.Run("all disables every dimension", func(t *testing.T) {
		f, err := finance.ParseFilter(finance.FilterParams{Year: "all", Function: "all", Type: "all"}, fixedNow, time.UTC, finance.RecordTypeValidator)
		require.NoError(t, err)
		assert.True(t, f.IsEmpty())
	})

	t.Run("year function and type", func(t *testing.T) {
		f, err := finance.ParseFilter(finance.FilterParams{Year: "2024", Function: "Feast", Type: "offering"}, fixedNow, time.UTC, finance.RecordTypeValidator)
		require.NoError(t, err)
		assert.Equal(t, 2024, f.Year)
		require.NotNil(t, f.DateRange)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), f.DateRange.From)
		assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), f.DateRange.To)
		assert.Equal(t, "Feast", f.Function)
		assert.Equal(t, "offering", f.Type)
	})

	t.Run("function match is case sensitive and untouched", func(t *testing.T) {
		f, err := finance.ParseFilter(finance.FilterParams{Function: "feast"}, fixedNow, time.UTC, nil)
		require.NoError(t, err)
		assert.Equal(t, "feast", f.Function)
	})

	t.Run("invalid year propagates", func(t *testing.T) {
		_, err := finance.ParseFilter(finance.FilterParams{Year: "1999"}, fixedNow, time.UTC, nil)
		assert.True(t, errors.Is(err, shared.ErrInvalidParameter))
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		_, err := finance.ParseFilter(finance.FilterParams{Type: "tithe"}, fixedNow, time.UTC, finance.RecordTypeValidator)
		assert.True(t, errors.Is(err, shared.ErrInvalidParameter))
	})

	t.Run("type ignored without validator", func(t *testing.T) {
		f, err := finance.ParseFilter(finance.FilterParams{Type: "anything"}, fixedNow, time.UTC, nil)
		require.NoError(t, err)
		assert.Empty(t, f.Type)
	})
}

func TestParseSortOrder(t *testing.T) {
	order, err := finance.ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, finance.SortDesc, order)

	order, err = finance.ParseSortOrder("ASC")
	require.NoError(t, err)
	assert.Equal(t, finance.SortAsc, order)

	_, err = finance.ParseSortOrder("sideways")
	assert.True(t, errors.Is(err, shared.ErrInvalidParameter))
}
