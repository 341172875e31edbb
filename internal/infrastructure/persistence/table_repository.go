package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository implements shared.Repository over one table. T is the
// domain entity, M its persistence model.
type crudRepository[T any, M any] struct {
	db         *gorm.DB
	resource   string
	conflict   string
	saveOmit   []string
	toDomain   func(*M) *T
	fromDomain func(*T) *M
}

func (r *crudRepository[T, M]) notFound() string {
	return r.resource + " not found"
}

func (r *crudRepository[T, M]) fail(op string, err error) error {
	return translateError(r.resource+"."+op, err, r.notFound(), r.conflict)
}

// FindByID finds an entity by its ID
func (r *crudRepository[T, M]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var model M
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, r.fail("FindByID", err)
	}
	return r.toDomain(&model), nil
}

// Create inserts a new entity
func (r *crudRepository[T, M]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(r.fromDomain(entity)).Error; err != nil {
		return r.fail("Create", err)
	}
	return nil
}

// Save overwrites every mutable column of an existing entity
func (r *crudRepository[T, M]) Save(ctx context.Context, entity *T) error {
	omit := append([]string{"id", "created_at"}, r.saveOmit...)
	model := r.fromDomain(entity)
	result := r.db.WithContext(ctx).Model(model).Select("*").Omit(omit...).Updates(model)
	if result.Error != nil {
		return r.fail("Save", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(r.notFound())
	}
	return nil
}

// Delete removes an entity by ID
func (r *crudRepository[T, M]) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(new(M), "id = ?", id)
	if result.Error != nil {
		return r.fail("Delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewNotFound(r.notFound())
	}
	return nil
}

// datedRepository adds the filter, distinct function and distinct year
// queries shared by every table with date and function columns.
type datedRepository[T any, M any] struct {
	crudRepository[T, M]
	loc     *time.Location
	hasType bool
}

func column(name string) clause.Column {
	return clause.Column{Name: name}
}

// applyFilter narrows query by the parsed list filter
func (r *datedRepository[T, M]) applyFilter(query *gorm.DB, filter finance.Filter) *gorm.DB {
	if filter.DateRange != nil {
		query = query.Where(clause.Gte{Column: column("date"), Value: filter.DateRange.From.UTC()}).
			Where(clause.Lte{Column: column("date"), Value: filter.DateRange.To.UTC()})
	}
	if filter.Function != "" {
		query = query.Where(clause.Eq{Column: column("function"), Value: filter.Function})
	}
	if filter.Type != "" && r.hasType {
		query = query.Where(clause.Eq{Column: column("type"), Value: filter.Type})
	}
	return query
}

// Find returns the matching entities, newest date first
func (r *datedRepository[T, M]) Find(ctx context.Context, filter finance.Filter) ([]T, error) {
	var rows []M
	query := r.applyFilter(r.db.WithContext(ctx).Model(new(M)), filter).
		Order(clause.OrderByColumn{Column: column("date"), Desc: true})
	if err := query.Find(&rows).Error; err != nil {
		return nil, r.fail("Find", err)
	}

	out := make([]T, len(rows))
	for i := range rows {
		out[i] = *r.toDomain(&rows[i])
	}
	return out, nil
}

// DistinctFunctions returns every non-empty function tag
func (r *datedRepository[T, M]) DistinctFunctions(ctx context.Context) ([]string, error) {
	functions := make([]string, 0)
	err := r.db.WithContext(ctx).Model(new(M)).
		Distinct("function").
		Where(clause.Neq{Column: column("function"), Value: ""}).
		Pluck("function", &functions).Error
	if err != nil {
		return nil, r.fail("DistinctFunctions", err)
	}
	sort.Strings(functions)
	return functions, nil
}

// DistinctYears returns the calendar years present in the date column,
// evaluated in the configured location
func (r *datedRepository[T, M]) DistinctYears(ctx context.Context) ([]int, error) {
	db := r.db.WithContext(ctx)
	years := make([]int, 0)

	if DialectOf(r.db) == config.DriverPostgres {
		err := db.Model(new(M)).
			Distinct(postgresYearExpr+" AS year", r.loc.String()).
			Pluck("year", &years).Error
		if err != nil {
			return nil, r.fail("DistinctYears", err)
		}
		return years, nil
	}

	var dates []time.Time
	if err := db.Model(new(M)).Pluck("date", &dates).Error; err != nil {
		return nil, r.fail("DistinctYears", err)
	}
	seen := make(map[int]struct{}, len(dates))
	for _, d := range dates {
		y := d.In(r.loc).Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	return years, nil
}

// postgresYearExpr extracts the calendar year of date in a named zone
const postgresYearExpr = `CAST(EXTRACT(YEAR FROM "date" AT TIME ZONE ?) AS INTEGER)`

// ledgerRepository adds the yearly totals of the amount column
type ledgerRepository[T any, M any] struct {
	datedRepository[T, M]
}

type yearTotalRow struct {
	Year   int
	Total  finance.Amount
	Date   time.Time
	Amount finance.Amount
}

// YearlyTotals sums amount per year. Postgres aggregates in SQL. SQLite
// returns one row per entry so that non-numeric amounts, which SQLite's
// dynamic typing lets through, can be skipped and reported by the caller.
func (r *ledgerRepository[T, M]) YearlyTotals(ctx context.Context) ([]finance.YearTotal, error) {
	db := r.db.WithContext(ctx)
	var rows []yearTotalRow

	if DialectOf(r.db) == config.DriverPostgres {
		err := db.Model(new(M)).
			Select(postgresYearExpr+` AS year, SUM(amount) AS total`, r.loc.String()).
			Group("year").
			Scan(&rows).Error
		if err != nil {
			return nil, r.fail("YearlyTotals", err)
		}
		out := make([]finance.YearTotal, len(rows))
		for i, row := range rows {
			out[i] = finance.YearTotal{Year: row.Year, Total: row.Total}
		}
		return out, nil
	}

	if err := db.Model(new(M)).Select("date", "amount").Scan(&rows).Error; err != nil {
		return nil, r.fail("YearlyTotals", err)
	}
	out := make([]finance.YearTotal, len(rows))
	for i, row := range rows {
		out[i] = finance.YearTotal{Year: row.Date.In(r.loc).Year(), Total: row.Amount}
	}
	return out, nil
}

func locationOrUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
