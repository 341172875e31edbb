package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

func newExpenseService(t *testing.T) (*ExpenseService, *MockLedgerRepository[finance.Expense], *observer.ObservedLogs, *fakeMetrics) {
	t.Helper()
	repo := new(MockLedgerRepository[finance.Expense])
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := &fakeMetrics{}
	svc := NewExpenseService(repo, Options{
		Location: time.UTC,
		Now:      func() time.Time { return testNow },
		Metrics:  metrics,
		Logger:   zap.New(core),
	})
	return svc, repo, logs, metrics
}

func mustAmount(t *testing.T, s string) finance.Amount {
	t.Helper()
	a, err := finance.NewAmountFromString(s)
	require.NoError(t, err)
	return a
}

func TestExpenseService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("flowers expense defaults the date", func(t *testing.T) {
		svc, repo, _, metrics := newExpenseService(t)
		repo.On("Create", ctx, mock.AnythingOfType("*finance.Expense")).Return(nil)

		resp, err := svc.Create(ctx, CreateExpenseRequest{Name: "Flowers", Amount: "150", Function: "Feast"})

		require.NoError(t, err)
		assert.Equal(t, "Flowers", resp.Name)
		assert.Equal(t, "150", resp.Amount.String())
		assert.Equal(t, testNow, resp.Date)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.Equal(t, []recordedMetric{{resource: "expense", operation: "create"}}, metrics.writes)
		repo.AssertExpectations(t)
	})

	t.Run("numeric json amount", func(t *testing.T) {
		svc, repo, _, _ := newExpenseService(t)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, CreateExpenseRequest{Name: "Candles", Amount: float64(42.5), Function: "Easter", Date: "2024-04-01"})

		require.NoError(t, err)
		assert.Equal(t, "42.5", resp.Amount.String())
		assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), resp.Date)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, repo, _, _ := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Name: "Flowers", Amount: "150"})

		require.Error(t, err)
		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.RequiredFieldsMessage, de.Message)
		assert.Equal(t, CreateExpenseRequest{Name: "Flowers", Amount: "150"}, de.Received)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("non numeric amount", func(t *testing.T) {
		svc, _, _, _ := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Name: "Flowers", Amount: "ten", Function: "Feast"})

		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "Amount must be a valid number", de.Message)
	})

	t.Run("negative amount", func(t *testing.T) {
		svc, _, _, _ := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Name: "Flowers", Amount: -3, Function: "Feast"})

		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, "Amount must be non-negative", de.Message)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _, _, _ := newExpenseService(t)

		_, err := svc.Create(ctx, CreateExpenseRequest{Name: "Flowers", Amount: 1, Function: "Feast", Date: "yesterday"})

		assert.ErrorIs(t, err, shared.ErrInvalidParameter)
	})
}

func TestExpenseService_List_SkipsNonNumericAmounts(t *testing.T) {
	ctx := context.Background()
	svc, repo, logs, metrics := newExpenseService(t)

	bad := finance.Expense{BaseEntity: shared.NewBaseEntity(), Name: "Broken", Amount: finance.InvalidAmount("twelve"), Function: "Feast"}
	expenses := []finance.Expense{
		{BaseEntity: shared.NewBaseEntity(), Name: "Flowers", Amount: mustAmount(t, "150"), Function: "Feast"},
		bad,
		{BaseEntity: shared.NewBaseEntity(), Name: "Candles", Amount: mustAmount(t, "25.50"), Function: "Feast"},
	}
	repo.On("Find", ctx, mock.MatchedBy(func(f finance.Filter) bool {
		return f.Year == 2024 && f.Function == "Feast" && f.Type == ""
	})).Return(expenses, nil)

	resp, err := svc.List(ctx, finance.FilterParams{Year: "2024", Function: "Feast", Type: "offering"})

	require.NoError(t, err)
	assert.Len(t, resp.Expenses, 3)
	assert.Equal(t, "175.5", resp.TotalExpenses.String())

	warnings := logs.FilterMessage("Skipping non-numeric amount").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, bad.ID.String(), fields["id"])
	assert.Equal(t, "twelve", fields["amount"])
	assert.Equal(t, []string{"expense"}, metrics.skipped)
}

func TestExpenseService_List_RejectsYearOutOfRange(t *testing.T) {
	svc, repo, _, _ := newExpenseService(t)

	_, err := svc.List(context.Background(), finance.FilterParams{Year: "1999"})

	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "Year must be between 2000 and 2026", de.Message)
	assert.Equal(t, 1999, de.Received)
	repo.AssertNotCalled(t, "Find", mock.Anything, mock.Anything)
}

func TestExpenseService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial merge is idempotent", func(t *testing.T) {
		svc, repo, _, _ := newExpenseService(t)
		existing, err := finance.NewExpense("Flowers", mustAmount(t, "150"), "Feast", testNow)
		require.NoError(t, err)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		name := "Roses"
		req := UpdateExpenseRequest{Name: &name, Amount: "175"}
		first, err := svc.Update(ctx, existing.ID.String(), req)
		require.NoError(t, err)
		second, err := svc.Update(ctx, existing.ID.String(), req)
		require.NoError(t, err)

		assert.Equal(t, "Roses", second.Name)
		assert.Equal(t, "175", second.Amount.String())
		assert.Equal(t, "Feast", second.Function)
		assert.Equal(t, first.Name, second.Name)
		assert.True(t, first.Amount.Equal(second.Amount))
		assert.Equal(t, first.Date, second.Date)
	})

	t.Run("invalid merge leaves the store untouched", func(t *testing.T) {
		svc, repo, _, _ := newExpenseService(t)
		existing, err := finance.NewExpense("Flowers", mustAmount(t, "150"), "Feast", testNow)
		require.NoError(t, err)
		repo.On("FindByID", ctx, existing.ID).Return(existing, nil)

		empty := ""
		_, err = svc.Update(ctx, existing.ID.String(), UpdateExpenseRequest{Function: &empty})

		assert.ErrorIs(t, err, shared.ErrInvalidParameter)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		svc, _, _, _ := newExpenseService(t)

		_, err := svc.Update(ctx, "not-a-uuid", UpdateExpenseRequest{})

		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeNotFound, de.Code)
		assert.Equal(t, "Expense not found", de.Message)
	})
}

func TestExpenseService_YearsAndTotals(t *testing.T) {
	ctx := context.Background()
	svc, repo, logs, _ := newExpenseService(t)
	repo.On("DistinctYears", ctx).Return([]int{2021, 2024, 2019}, nil)
	repo.On("YearlyTotals", ctx).Return([]finance.YearTotal{
		{Year: 2024, Total: mustAmount(t, "10")},
		{Year: 2019, Total: mustAmount(t, "4")},
		{Year: 2024, Total: finance.InvalidAmount("n/a")},
		{Year: 2024, Total: mustAmount(t, "5")},
	}, nil)

	years, err := svc.Years(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2021, 2019}, years)

	years, err = svc.Years(ctx, "asc")
	require.NoError(t, err)
	assert.Equal(t, []int{2019, 2021, 2024}, years)

	_, err = svc.Years(ctx, "random")
	assert.ErrorIs(t, err, shared.ErrInvalidParameter)

	series, err := svc.YearlyTotalsResponse(ctx)
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, 2019, series[0].Year)
	assert.Equal(t, "4", series[0].Total.String())
	assert.Equal(t, 2024, series[1].Year)
	assert.Equal(t, "15", series[1].Total.String())
	assert.Equal(t, 1, logs.FilterMessage("Skipping non-numeric amount").Len())
}
