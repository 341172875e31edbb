// Package finance holds the use cases behind the records, donations and
// expenses endpoints.
package finance

import (
	"context"
	"strings"
	"time"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/finance"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/domain/shared"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// MetricsRecorder counts ledger activity
type MetricsRecorder interface {
	EntryWritten(ctx context.Context, resource, operation string)
	AmountSkipped(ctx context.Context, resource string)
}

type nopRecorder struct{}

func (nopRecorder) EntryWritten(context.Context, string, string) {}
func (nopRecorder) AmountSkipped(context.Context, string)        {}

// Options carries what every ledger service shares
type Options struct {
	// Location cuts calendar years; nil means UTC
	Location *time.Location
	Now      func() time.Time
	Metrics  MetricsRecorder
	Logger   *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Metrics == nil {
		o.Metrics = nopRecorder{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// ledger implements the read and delete operations common to the three
// money tables. resource is the capitalized name used in messages.
type ledger[T any] struct {
	repo      finance.LedgerRepository[T]
	resource  string
	validType finance.TypeValidator
	opts      Options
}

func newLedger[T any](repo finance.LedgerRepository[T], resource string, validType finance.TypeValidator, opts Options) ledger[T] {
	return ledger[T]{repo: repo, resource: resource, validType: validType, opts: opts.withDefaults()}
}

func (l *ledger[T]) metricName() string {
	return strings.ToLower(l.resource)
}

func (l *ledger[T]) notFound() string {
	return l.resource + " not found"
}

func (l *ledger[T]) find(ctx context.Context, params finance.FilterParams) ([]T, error) {
	filter, err := finance.ParseFilter(params, l.opts.Now(), l.opts.Location, l.validType)
	if err != nil {
		return nil, err
	}
	return l.repo.Find(ctx, filter)
}

// skipper logs and counts each non-numeric amount left out of a total
func (l *ledger[T]) skipper(ctx context.Context) finance.SkipFunc {
	return func(id, raw string) {
		l.opts.Logger.Warn("Skipping non-numeric amount",
			zap.String("resource", l.metricName()),
			zap.String("id", id),
			zap.String("amount", raw),
			zap.String("request_id", logger.GetRequestID(ctx)),
		)
		l.opts.Metrics.AmountSkipped(ctx, l.metricName())
	}
}

// Get returns one entry by id
func (l *ledger[T]) Get(ctx context.Context, rawID string) (*T, error) {
	id, err := shared.ParseID(rawID, l.notFound())
	if err != nil {
		return nil, err
	}
	return l.repo.FindByID(ctx, id)
}

// Delete removes one entry by id
func (l *ledger[T]) Delete(ctx context.Context, rawID string) error {
	id, err := shared.ParseID(rawID, l.notFound())
	if err != nil {
		return err
	}
	if err := l.repo.Delete(ctx, id); err != nil {
		return err
	}
	l.opts.Logger.Info(l.resource+" deleted", zap.String("id", id.String()))
	l.opts.Metrics.EntryWritten(ctx, l.metricName(), "delete")
	return nil
}

// Years returns the distinct calendar years, descending unless rawOrder is asc
func (l *ledger[T]) Years(ctx context.Context, rawOrder string) ([]int, error) {
	order, err := finance.ParseSortOrder(rawOrder)
	if err != nil {
		return nil, err
	}
	years, err := l.repo.DistinctYears(ctx)
	if err != nil {
		return nil, err
	}
	return finance.SortYears(years, order), nil
}

// Functions returns the distinct non-empty function tags
func (l *ledger[T]) Functions(ctx context.Context) ([]string, error) {
	return l.repo.DistinctFunctions(ctx)
}

// YearlyTotals returns per-year sums, ascending, without empty years
func (l *ledger[T]) YearlyTotals(ctx context.Context) ([]finance.YearTotal, error) {
	rows, err := l.repo.YearlyTotals(ctx)
	if err != nil {
		return nil, err
	}
	return finance.MergeYearTotals(rows, l.skipper(ctx)), nil
}

func (l *ledger[T]) create(ctx context.Context, entity *T) error {
	if err := l.repo.Create(ctx, entity); err != nil {
		return err
	}
	l.opts.Metrics.EntryWritten(ctx, l.metricName(), "create")
	return nil
}

// update loads id, applies mutate and saves the result
func (l *ledger[T]) update(ctx context.Context, rawID string, mutate func(*T) error) (*T, error) {
	entity, err := l.Get(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := mutate(entity); err != nil {
		return nil, err
	}
	if err := l.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	l.opts.Metrics.EntryWritten(ctx, l.metricName(), "update")
	return entity, nil
}

// dateOrNow parses a request date, falling back to the current time
func (l *ledger[T]) dateOrNow(raw string) (time.Time, error) {
	t, err := shared.ParseDate(raw, l.opts.Location)
	if err != nil {
		return time.Time{}, err
	}
	if t.IsZero() {
		return l.opts.Now(), nil
	}
	return t, nil
}
