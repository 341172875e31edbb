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

func newDonationService() (*DonationService, *MockLedgerRepository[finance.Donation]) {
	repo := new(MockLedgerRepository[finance.Donation])
	svc := NewDonationService(repo, Options{Now: func() time.Time { return testNow }})
	return svc, repo
}

func TestDonationService_DeleteMissing(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDonationService()
	id := uuid.New()
	repo.On("Delete", ctx, id).Return(shared.NewNotFound("Donation not found"))

	err := svc.Delete(ctx, id.String())

	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, shared.CodeNotFound, de.Code)
	assert.Equal(t, "Donation not found", de.Message)
}

func TestDonationService_ListBalance(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDonationService()
	donations := []finance.Donation{
		{BaseEntity: shared.NewBaseEntity(), DonorName: "A", Amount: mustAmount(t, "100.10"), Function: "Feast", Type: finance.DonationTypeIncome},
		{BaseEntity: shared.NewBaseEntity(), DonorName: "B", Amount: mustAmount(t, "40.05"), Function: "Feast", Type: finance.DonationTypeExpenditure},
	}
	repo.On("Find", ctx, mock.Anything).Return(donations, nil)

	resp, err := svc.List(ctx, finance.FilterParams{Year: "2024", Type: "income"})

	require.NoError(t, err)
	assert.Len(t, resp.Donations, 2)
	assert.Equal(t, "100.1", resp.Totals.Income.String())
	assert.Equal(t, "40.05", resp.Totals.Expenditure.String())
	assert.Equal(t, "60.05", resp.Totals.Balance.String())
}

func TestDonationService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc, repo := newDonationService()
	repo.On("Create", ctx, mock.Anything).Return(nil)

	created, err := svc.Create(ctx, CreateDonationRequest{
		DonorName: "John",
		Amount:    "250",
		Function:  "Christmas",
		Type:      "income",
		Date:      "2024-12-25T10:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "John", created.DonorName)
	assert.Equal(t, time.Date(2024, 12, 25, 10, 0, 0, 0, time.UTC), created.Date.UTC())

	_, err = svc.Create(ctx, CreateDonationRequest{DonorName: "John", Amount: "250", Type: "income"})
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, shared.RequiredFieldsMessage, de.Message)

	stored, err := finance.NewDonation("John", mustAmount(t, "250"), "Christmas", finance.DonationTypeIncome, "", testNow)
	require.NoError(t, err)
	repo.On("FindByID", ctx, stored.ID).Return(stored, nil)
	repo.On("Save", ctx, stored).Return(nil)

	expenditure := "expenditure"
	updated, err := svc.Update(ctx, stored.ID.String(), UpdateDonationRequest{Type: &expenditure})
	require.NoError(t, err)
	assert.Equal(t, "expenditure", updated.Type)
	assert.Equal(t, "250", updated.Amount.String())
}
