package finance_test

import (
	"testing"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, s string) finance.Amount {
	t.Helper()
	a, err := finance.NewAmountFromString(s)
	require.NoError(t, err)
	return a
}

func TestSumDonations_BalanceIdentity(t *testing.T) {
	donations := []finance.Donation{
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "100.10"), Type: finance.DonationTypeIncome},
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "0.20"), Type: finance.DonationTypeIncome},
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "40.05"), Type: finance.DonationTypeExpenditure},
	}

	totals := finance.SumDonations(donations, nil)

	assert.Equal(t, "100.3", totals.Income.String())
	assert.Equal(t, "40.05", totals.Expenditure.String())
	assert.Equal(t, "60.25", totals.Balance.String())
	assert.True(t, totals.Income.Sub(totals.Expenditure).Equal(totals.Balance))
}

func TestSumDonations_Empty(t *testing.T) {
	totals := finance.SumDonations(nil, nil)
	assert.True(t, totals.Income.Decimal().IsZero())
	assert.True(t, totals.Expenditure.Decimal().IsZero())
	assert.True(t, totals.Balance.Decimal().IsZero())
}

func TestSumRecords_Partition(t *testing.T) {
	records := []finance.Record{
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "0.1"), Type: finance.RecordTypeOffering},
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "0.2"), Type: finance.RecordTypeOffering},
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "500"), Type: finance.RecordTypeDonation},
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "75.5"), Type: finance.RecordTypeChurchTax},
	}

	totals := finance.SumRecords(records, nil)

	assert.Equal(t, "0.3", totals.Offerings.String())
	assert.Equal(t, "500", totals.Donations.String())
	assert.Equal(t, "75.5", totals.ChurchTax.String())
	assert.Equal(t, "575.8", totals.TotalIncome.String())
	sum := totals.Offerings.Add(totals.Donations).Add(totals.ChurchTax)
	assert.True(t, sum.Equal(totals.TotalIncome))
}

func TestSumExpenses_SkipsNonNumeric(t *testing.T) {
	bad := finance.Expense{BaseEntity: shared.NewBaseEntity(), Amount: finance.InvalidAmount("twelve")}
	expenses := []finance.Expense{
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "150")},
		bad,
		{BaseEntity: shared.NewBaseEntity(), Amount: amount(t, "49.99")},
	}

	var skipped []string
	total := finance.SumExpenses(expenses, func(id, raw string) {
		skipped = append(skipped, id+"="+raw)
	})

	assert.Equal(t, "199.99", total.String())
	assert.Equal(t, []string{bad.ID.String() + "=twelve"}, skipped)
}

func TestSortYears(t *testing.T) {
	years := []int{2021, 2024, 2021, 2019, 2024}

	assert.Equal(t, []int{2024, 2021, 2019}, finance.SortYears(years, finance.SortDesc))
	assert.Equal(t, []int{2019, 2021, 2024}, finance.SortYears(years, finance.SortAsc))
	assert.Empty(t, finance.SortYears(nil, finance.SortDesc))
}

func TestMergeYearTotals_AscendingWithoutGaps(t *testing.T) {
	rows := []finance.YearTotal{
		{Year: 2024, Total: amount(t, "10")},
		{Year: 2021, Total: amount(t, "5")},
		{Year: 2024, Total: amount(t, "2.5")},
	}

	series := finance.MergeYearTotals(rows, nil)

	require.Len(t, series, 2)
	assert.Equal(t, 2021, series[0].Year)
	assert.Equal(t, "5", series[0].Total.String())
	assert.Equal(t, 2024, series[1].Year)
	assert.Equal(t, "12.5", series[1].Total.String())
}

func TestRecordInvariant_FunctionRequiredForDonation(t *testing.T) {
	_, err := finance.NewRecord("Parish feast", amount(t, "100"), "", finance.RecordTypeDonation, time.Time{})
	require.Error(t, err)
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, shared.CodeInvalidParameter, de.Code)
	assert.Equal(t, "Function is required for donation records", de.Message)

	r, err := finance.NewRecord("Sunday collection", amount(t, "100"), "", finance.RecordTypeOffering, time.Time{})
	require.NoError(t, err)
	assert.False(t, r.Date.IsZero())
}

func TestRecordApply_IsIdempotentAndAtomic(t *testing.T) {
	r, err := finance.NewRecord("Collection", amount(t, "10"), "Feast", finance.RecordTypeDonation, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	newAmount := amount(t, "25")
	patch := finance.RecordPatch{Amount: &newAmount}
	require.NoError(t, r.Apply(patch))
	first := *r
	require.NoError(t, r.Apply(patch))

	assert.Equal(t, first.Name, r.Name)
	assert.True(t, first.Amount.Equal(r.Amount))
	assert.Equal(t, first.Date, r.Date)

	empty := ""
	err = r.Apply(finance.RecordPatch{Function: &empty})
	require.Error(t, err)
	assert.Equal(t, "Feast", r.Function, "failed patch must leave the record unchanged")
}

func TestNewExpense_Validation(t *testing.T) {
	_, err := finance.NewExpense("Flowers", finance.InvalidAmount("abc"), "Feast", time.Time{})
	require.Error(t, err)
	de, _ := shared.AsDomainError(err)
	assert.Equal(t, "Amount must be a valid number", de.Message)

	_, err = finance.NewExpense("Flowers", finance.NewAmount(decimal.NewFromInt(-1)), "Feast", time.Time{})
	require.Error(t, err)

	e, err := finance.NewExpense(" Flowers ", amount(t, "150"), "Feast", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "Flowers", e.Name)
}
