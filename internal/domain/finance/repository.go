package finance

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// LedgerRepository is the store capability shared by the three money tables
type LedgerRepository[T any] interface {
	shared.Repository[T]

	// Find returns the entries matching filter, newest date first
	Find(ctx context.Context, filter Filter) ([]T, error)
	// DistinctFunctions returns every non-empty function tag in the table
	DistinctFunctions(ctx context.Context) ([]string, error)
	// DistinctYears returns the calendar years present in the date column, unordered
	DistinctYears(ctx context.Context) ([]int, error)
	// YearlyTotals returns partial totals per calendar year, unordered. A year
	// may appear more than once; fold the result with MergeYearTotals.
	YearlyTotals(ctx context.Context) ([]YearTotal, error)
}

// RecordRepository stores financial records
type RecordRepository interface {
	LedgerRepository[Record]
}

// DonationRepository stores legacy donations
type DonationRepository interface {
	LedgerRepository[Donation]
}

// ExpenseRepository stores expenses
type ExpenseRepository interface {
	LedgerRepository[Expense]
}
