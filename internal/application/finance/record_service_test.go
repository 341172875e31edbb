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
)

func newRecordService() (*RecordService, *MockLedgerRepository[finance.Record], *fakeMetrics) {
	repo := new(MockLedgerRepository[finance.Record])
	metrics := &fakeMetrics{}
	svc := NewRecordService(repo, Options{Now: func() time.Time { return testNow }, Metrics: metrics})
	return svc, repo, metrics
}

func TestRecordService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("donation without function is rejected", func(t *testing.T) {
		svc, repo, _ := newRecordService()

		_, err := svc.Create(ctx, CreateRecordRequest{Name: "Feast gift", Amount: 500, Type: "donation"})

		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.CodeInvalidParameter, de.Code)
		assert.Equal(t, "Function is required for donation records", de.Message)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("offering without function is accepted", func(t *testing.T) {
		svc, repo, _ := newRecordService()
		repo.On("Create", ctx, mock.Anything).Return(nil)

		resp, err := svc.Create(ctx, CreateRecordRequest{Name: "Sunday collection", Amount: "1200.50", Type: "offering"})

		require.NoError(t, err)
		assert.Equal(t, "offering", resp.Type)
		assert.Equal(t, "1200.5", resp.Amount.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		svc, _, _ := newRecordService()

		_, err := svc.Create(ctx, CreateRecordRequest{Name: "x", Amount: 1, Type: "tithe"})

		assert.ErrorIs(t, err, shared.ErrInvalidParameter)
	})

	t.Run("missing type", func(t *testing.T) {
		svc, _, _ := newRecordService()

		_, err := svc.Create(ctx, CreateRecordRequest{Name: "x", Amount: 1})

		de, ok := shared.AsDomainError(err)
		require.True(t, ok)
		assert.Equal(t, shared.RequiredFieldsMessage, de.Message)
	})

	t.Run("store failure is passed through", func(t *testing.T) {
		svc, repo, metrics := newRecordService()
		repo.On("Create", ctx, mock.Anything).Return(shared.NewStoreFailure("records.create", assert.AnError))

		_, err := svc.Create(ctx, CreateRecordRequest{Name: "x", Amount: 1, Type: "church_tax"})

		assert.ErrorIs(t, err, shared.ErrStoreFailure)
		assert.Empty(t, metrics.writes)
	})
}

func TestRecordService_List_Totals(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newRecordService()
	records := []finance.Record{
		{BaseEntity: shared.NewBaseEntity(), Name: "a", Amount: mustAmount(t, "0.1"), Type: finance.RecordTypeOffering},
		{BaseEntity: shared.NewBaseEntity(), Name: "b", Amount: mustAmount(t, "0.2"), Type: finance.RecordTypeOffering},
		{BaseEntity: shared.NewBaseEntity(), Name: "c", Amount: mustAmount(t, "300"), Function: "Feast", Type: finance.RecordTypeDonation},
		{BaseEntity: shared.NewBaseEntity(), Name: "d", Amount: mustAmount(t, "45"), Type: finance.RecordTypeChurchTax},
	}
	repo.On("Find", ctx, mock.MatchedBy(func(f finance.Filter) bool { return f.Type == "offering" || f.Type == "" })).Return(records, nil)

	resp, err := svc.List(ctx, finance.FilterParams{Type: "all"})

	require.NoError(t, err)
	require.Len(t, resp.Records, 4)
	assert.Equal(t, "0.3", resp.Totals.Offerings.String())
	assert.Equal(t, "300", resp.Totals.Donations.String())
	assert.Equal(t, "45", resp.Totals.ChurchTax.String())
	assert.Equal(t, "345.3", resp.Totals.TotalIncome.String())

	_, err = svc.List(ctx, finance.FilterParams{Type: "expenditure"})
	assert.ErrorIs(t, err, shared.ErrInvalidParameter)
}

func TestRecordService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, metrics := newRecordService()
	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, shared.NewNotFound("Record not found"))
	repo.On("Delete", ctx, id).Return(nil)

	_, err := svc.GetByID(ctx, id.String())
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, id.String()))
	assert.Equal(t, []recordedMetric{{resource: "record", operation: "delete"}}, metrics.writes)

	err = svc.Delete(ctx, "123")
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "Record not found", de.Message)
}

func TestRecordService_UpdateTypeToDonationNeedsFunction(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newRecordService()
	existing, err := finance.NewRecord("Collection", mustAmount(t, "10"), "", finance.RecordTypeOffering, testNow)
	require.NoError(t, err)
	repo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	donation := "donation"
	_, err = svc.Update(ctx, existing.ID.String(), UpdateRecordRequest{Type: &donation})

	assert.ErrorIs(t, err, shared.ErrInvalidParameter)
	assert.Equal(t, finance.RecordTypeOffering, existing.Type)
}
