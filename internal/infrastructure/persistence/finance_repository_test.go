package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAmount(t *testing.T, s string) finance.Amount {
	t.Helper()
	a, err := finance.NewAmountFromString(s)
	require.NoError(t, err)
	return a
}

func seedRecord(t *testing.T, repo *GormRecordRepository, name, amount, function string, typ finance.RecordType, date time.Time) *finance.Record {
	t.Helper()
	r, err := finance.NewRecord(name, mustAmount(t, amount), function, typ, date)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), r))
	return r
}

func TestGormRecordRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRecordRepository(newSQLiteDB(t), time.UTC)

	created := seedRecord(t, repo, "Sunday collection", "120.50", "", finance.RecordTypeOffering, time.Date(2024, 5, 5, 9, 0, 0, 0, time.UTC))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunday collection", found.Name)
	assert.Equal(t, "120.5", found.Amount.String())
	assert.Equal(t, finance.RecordTypeOffering, found.Type)
	assert.True(t, found.Date.Equal(created.Date))

	newName := "Sunday collection (corrected)"
	require.NoError(t, found.Apply(finance.RecordPatch{Name: &newName}))
	require.NoError(t, repo.Save(ctx, found))

	reloaded, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, newName, reloaded.Name)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.FindByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
	de, _ := shared.AsDomainError(err)
	assert.Equal(t, "Record not found", de.Message)
}

func TestGormRecordRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRecordRepository(newSQLiteDB(t), time.UTC)

	err := repo.Delete(ctx, uuid.New())
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	ghost, err := finance.NewRecord("Ghost", mustAmount(t, "1"), "", finance.RecordTypeOffering, time.Time{})
	require.NoError(t, err)
	err = repo.Save(ctx, ghost)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestGormRecordRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRecordRepository(newSQLiteDB(t), time.UTC)

	seedRecord(t, repo, "New year offering", "10", "", finance.RecordTypeOffering, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	seedRecord(t, repo, "Feast gift", "500", "Feast", finance.RecordTypeDonation, time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC))
	seedRecord(t, repo, "Year end tax", "75", "", finance.RecordTypeChurchTax, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC))
	seedRecord(t, repo, "Old offering", "5", "", finance.RecordTypeOffering, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC))
	seedRecord(t, repo, "Next offering", "7", "", finance.RecordTypeOffering, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	t.Run("empty filter returns everything newest first", func(t *testing.T) {
		all, err := repo.Find(ctx, finance.Filter{})
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "Next offering", all[0].Name)
		assert.Equal(t, "Old offering", all[4].Name)
	})

	t.Run("year bounds are inclusive", func(t *testing.T) {
		r := finance.YearRange(2024, time.UTC)
		got, err := repo.Find(ctx, finance.Filter{Year: 2024, DateRange: &r})
		require.NoError(t, err)
		require.Len(t, got, 3)
		for _, rec := range got {
			assert.Equal(t, 2024, rec.Date.Year())
		}
	})

	t.Run("function and type narrow the result", func(t *testing.T) {
		got, err := repo.Find(ctx, finance.Filter{Function: "Feast", Type: "donation"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Feast gift", got[0].Name)

		got, err = repo.Find(ctx, finance.Filter{Function: "feast"})
		require.NoError(t, err)
		assert.Empty(t, got, "function match is case sensitive")
	})
}

func TestGormRecordRepository_DistinctAndYearly(t *testing.T) {
	ctx := context.Background()
	repo := NewGormRecordRepository(newSQLiteDB(t), time.UTC)

	seedRecord(t, repo, "A", "10", "Feast", finance.RecordTypeDonation, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	seedRecord(t, repo, "B", "2.5", "", finance.RecordTypeOffering, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	seedRecord(t, repo, "C", "5", "Christmas", finance.RecordTypeDonation, time.Date(2021, 12, 25, 0, 0, 0, 0, time.UTC))

	functions, err := repo.DistinctFunctions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Christmas", "Feast"}, functions)

	years, err := repo.DistinctYears(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2024, 2021}, years)

	rows, err := repo.YearlyTotals(ctx)
	require.NoError(t, err)
	series := finance.MergeYearTotals(rows, nil)
	require.Len(t, series, 2)
	assert.Equal(t, 2021, series[0].Year)
	assert.Equal(t, "5", series[0].Total.String())
	assert.Equal(t, 2024, series[1].Year)
	assert.Equal(t, "12.5", series[1].Total.String())
}

func TestGormRecordRepository_YearsFollowLocation(t *testing.T) {
	ctx := context.Background()
	ist := time.FixedZone("IST", 5*3600+1800)
	repo := NewGormRecordRepository(newSQLiteDB(t), ist)

	// 20:00 UTC on Dec 31 is already Jan 1 in IST
	seedRecord(t, repo, "Midnight mass", "1", "", finance.RecordTypeOffering, time.Date(2023, 12, 31, 20, 0, 0, 0, time.UTC))

	years, err := repo.DistinctYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2024}, years)

	r := finance.YearRange(2024, ist)
	got, err := repo.Find(ctx, finance.Filter{Year: 2024, DateRange: &r})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGormExpenseRepository_SkipsJunkAmounts(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)
	repo := NewGormExpenseRepository(db, time.UTC)

	e, err := finance.NewExpense("Flowers", mustAmount(t, "150"), "Feast", time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, e))

	// rows written by older clients can carry text in the amount column
	require.NoError(t, db.Exec(
		`INSERT INTO expenses (id, name, amount, function, date) VALUES (?, 'Candles', 'twelve', 'Feast', ?)`,
		uuid.New().String(), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	).Error)

	all, err := repo.Find(ctx, finance.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	var skipped []string
	total := finance.SumExpenses(all, func(_, raw string) { skipped = append(skipped, raw) })
	assert.Equal(t, "150", total.String())
	assert.Equal(t, []string{"twelve"}, skipped)

	rows, err := repo.YearlyTotals(ctx)
	require.NoError(t, err)
	skipped = nil
	series := finance.MergeYearTotals(rows, func(_, raw string) { skipped = append(skipped, raw) })
	require.Len(t, series, 1)
	assert.Equal(t, "150", series[0].Total.String())
	assert.Equal(t, []string{"twelve"}, skipped)
}

func TestGormDonationRepository_TypeFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewGormDonationRepository(newSQLiteDB(t), time.UTC)

	in, err := finance.NewDonation("John", mustAmount(t, "100"), "Feast", finance.DonationTypeIncome, "", time.Time{})
	require.NoError(t, err)
	out, err := finance.NewDonation("Parish", mustAmount(t, "40"), "Feast", finance.DonationTypeExpenditure, "Flowers", time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, in))
	require.NoError(t, repo.Create(ctx, out))

	got, err := repo.Find(ctx, finance.Filter{Type: "expenditure"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Flowers", got[0].Description)

	err = repo.Delete(ctx, uuid.New())
	de, ok := shared.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, "Donation not found", de.Message)
}

func TestGormRecordRepository_PostgresQueries(t *testing.T) {
	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	t.Run("distinct years extract in the configured zone", func(t *testing.T) {
		db, mock, mockDB := newMockPostgresDB(t)
		defer mockDB.Close()
		repo := NewGormRecordRepository(db, ist)

		mock.ExpectQuery(`SELECT DISTINCT CAST\(EXTRACT\(YEAR FROM "date" AT TIME ZONE \$1\) AS INTEGER\) AS year FROM "financial_records"`).
			WithArgs("Asia/Kolkata").
			WillReturnRows(sqlmock.NewRows([]string{"year"}).AddRow(2024).AddRow(2023))

		years, err := repo.DistinctYears(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []int{2024, 2023}, years)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("yearly totals aggregate in SQL", func(t *testing.T) {
		db, mock, mockDB := newMockPostgresDB(t)
		defer mockDB.Close()
		repo := NewGormRecordRepository(db, ist)

		mock.ExpectQuery(`SELECT CAST\(EXTRACT\(YEAR FROM "date" AT TIME ZONE \$1\) AS INTEGER\) AS year, SUM\(amount\) AS total FROM "financial_records" GROUP BY "year"`).
			WithArgs("Asia/Kolkata").
			WillReturnRows(sqlmock.NewRows([]string{"year", "total"}).AddRow(2024, "12.5000"))

		rows, err := repo.YearlyTotals(context.Background())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2024, rows[0].Year)
		assert.Equal(t, "12.5", rows[0].Total.String())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("find applies filter columns", func(t *testing.T) {
		db, mock, mockDB := newMockPostgresDB(t)
		defer mockDB.Close()
		repo := NewGormRecordRepository(db, time.UTC)

		r := finance.YearRange(2024, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM "financial_records" WHERE "date" >= \$1 AND "date" <= \$2 AND "function" = \$3 AND "type" = \$4 ORDER BY "date" DESC`).
			WithArgs(r.From, r.To, "Feast", "donation").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "amount", "function", "type", "date"}))

		got, err := repo.Find(context.Background(), finance.Filter{Year: 2024, DateRange: &r, Function: "Feast", Type: "donation"})
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver failures become store failures", func(t *testing.T) {
		db, mock, mockDB := newMockPostgresDB(t)
		defer mockDB.Close()
		repo := NewGormRecordRepository(db, time.UTC)

		mock.ExpectQuery(`SELECT DISTINCT "function" FROM "financial_records"`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.DistinctFunctions(context.Background())
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrStoreFailure))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
