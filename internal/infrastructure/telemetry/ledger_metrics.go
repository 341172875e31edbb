package telemetry

import (
	"context"
)

// LedgerMetrics counts writes to the parish tables and the stored amounts
// that totals had to skip.
type LedgerMetrics struct {
	writes  *Counter
	skipped *Counter
}

// NewLedgerMetrics creates the ledger instruments on the "parish.ledger" meter
func NewLedgerMetrics(mp *MeterProvider) (*LedgerMetrics, error) {
	meter := mp.Meter("parish.ledger")

	writes, err := NewCounter(meter,
		"parish_ledger_writes_total",
		"Entries created, updated or deleted per resource",
		"{entry}",
	)
	if err != nil {
		return nil, err
	}

	skipped, err := NewCounter(meter,
		"parish_ledger_skipped_amounts_total",
		"Stored amounts left out of totals because they are not numeric",
		"{entry}",
	)
	if err != nil {
		return nil, err
	}

	return &LedgerMetrics{writes: writes, skipped: skipped}, nil
}

// EntryWritten counts a create, update or delete on resource
func (m *LedgerMetrics) EntryWritten(ctx context.Context, resource, operation string) {
	m.writes.Inc(ctx, AttrResource.String(resource), AttrOperation.String(operation))
}

// AmountSkipped counts a non-numeric amount left out of a total
func (m *LedgerMetrics) AmountSkipped(ctx context.Context, resource string) {
	m.skipped.Inc(ctx, AttrResource.String(resource))
}
