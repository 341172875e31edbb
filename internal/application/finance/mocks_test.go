package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/stretchr/testify/mock"
)

// MockLedgerRepository is a mock implementation of finance.LedgerRepository
type MockLedgerRepository[T any] struct {
	mock.Mock
}

func (m *MockLedgerRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockLedgerRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockLedgerRepository[T]) Save(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockLedgerRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedgerRepository[T]) Find(ctx context.Context, filter finance.Filter) ([]T, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockLedgerRepository[T]) DistinctFunctions(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLedgerRepository[T]) DistinctYears(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockLedgerRepository[T]) YearlyTotals(ctx context.Context) ([]finance.YearTotal, error) {
	args := m.Called(ctx)
	return args.Get(0).([]finance.YearTotal), args.Error(1)
}

type recordedMetric struct {
	resource  string
	operation string
}

// fakeMetrics captures calls to MetricsRecorder
type fakeMetrics struct {
	writes  []recordedMetric
	skipped []string
}

func (f *fakeMetrics) EntryWritten(_ context.Context, resource, operation string) {
	f.writes = append(f.writes, recordedMetric{resource: resource, operation: operation})
}

func (f *fakeMetrics) AmountSkipped(_ context.Context, resource string) {
	f.skipped = append(f.skipped, resource)
}
