package finance

import (
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
)

// Expense is money spent for a function. Every expense is an expenditure.
type Expense struct {
	shared.BaseEntity
	Name     string
	Amount   Amount
	Function string
	Date     time.Time
}

// NewExpense creates a new expense. A zero date defaults to now.
func NewExpense(name string, amount Amount, function string, date time.Time) (*Expense, error) {
	if date.IsZero() {
		date = time.Now()
	}
	e := &Expense{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Amount:     amount,
		Function:   strings.TrimSpace(function),
		Date:       date,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Validate checks the expense invariants
func (e *Expense) Validate() error {
	if e.Name == "" {
		return shared.NewInvalidParameter("Name is required", e.Name)
	}
	if err := validateAmount(e.Amount); err != nil {
		return err
	}
	if e.Function == "" {
		return shared.NewInvalidParameter("Function is required", e.Function)
	}
	return nil
}

// ExpensePatch holds the fields supplied on a partial update
type ExpensePatch struct {
	Name     *string
	Amount   *Amount
	Function *string
	Date     *time.Time
}

// Apply merges the supplied fields over the expense and re-validates it
func (e *Expense) Apply(p ExpensePatch) error {
	merged := *e
	if p.Name != nil {
		merged.Name = strings.TrimSpace(*p.Name)
	}
	if p.Amount != nil {
		merged.Amount = *p.Amount
	}
	if p.Function != nil {
		merged.Function = strings.TrimSpace(*p.Function)
	}
	if p.Date != nil {
		merged.Date = *p.Date
	}
	if err := merged.Validate(); err != nil {
		return err
	}
	merged.Touch()
	*e = merged
	return nil
}
