package finance

import (
	"context"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"go.uber.org/zap"
)

// ExpenseService handles expense operations
type ExpenseService struct {
	ledger[finance.Expense]
}

// NewExpenseService creates a new ExpenseService. Expenses have no type, so
// the type query parameter is ignored.
func NewExpenseService(repo finance.ExpenseRepository, opts Options) *ExpenseService {
	return &ExpenseService{ledger: newLedger[finance.Expense](repo, "Expense", nil, opts)}
}

// List returns the matching expenses, newest first, with their sum
func (s *ExpenseService) List(ctx context.Context, params finance.FilterParams) (*ExpenseListResponse, error) {
	expenses, err := s.find(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := &ExpenseListResponse{
		Expenses:      make([]ExpenseResponse, len(expenses)),
		TotalExpenses: finance.SumExpenses(expenses, s.skipper(ctx)),
	}
	for i := range expenses {
		resp.Expenses[i] = ToExpenseResponse(&expenses[i])
	}
	return resp, nil
}

// GetByID returns one expense
func (s *ExpenseService) GetByID(ctx context.Context, id string) (*ExpenseResponse, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(e)
	return &resp, nil
}

// Create validates and stores a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if anyMissing(req.Name, req.Amount, req.Function) {
		return nil, shared.NewInvalidParameter(shared.RequiredFieldsMessage, req)
	}
	amount, err := coerceAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrNow(req.Date)
	if err != nil {
		return nil, err
	}

	expense, err := finance.NewExpense(req.Name, amount, req.Function, date)
	if err != nil {
		return nil, err
	}
	if err := s.create(ctx, expense); err != nil {
		return nil, err
	}

	s.opts.Logger.Info("Expense created", zap.String("id", expense.ID.String()))
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// Update merges the supplied fields over the stored expense
func (s *ExpenseService) Update(ctx context.Context, id string, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	patch := finance.ExpensePatch{Name: req.Name, Function: req.Function}
	var err error
	if patch.Amount, err = coerceOptionalAmount(req.Amount); err != nil {
		return nil, err
	}
	if patch.Date, err = parseOptionalDate(req.Date, s.opts.Location); err != nil {
		return nil, err
	}

	expense, err := s.update(ctx, id, func(e *finance.Expense) error { return e.Apply(patch) })
	if err != nil {
		return nil, err
	}
	resp := ToExpenseResponse(expense)
	return &resp, nil
}

// YearlyTotalsResponse returns the yearly totals in response form
func (s *ExpenseService) YearlyTotalsResponse(ctx context.Context) ([]YearTotalResponse, error) {
	series, err := s.YearlyTotals(ctx)
	if err != nil {
		return nil, err
	}
	return toYearTotalResponses(series), nil
}
