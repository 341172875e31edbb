package telemetry

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// PoolStatsFunc reads the current connection pool statistics.
type PoolStatsFunc func() (sql.DBStats, error)

// RegisterDBPoolMetrics exports connection pool gauges, read on every collection.
func RegisterDBPoolMetrics(mp *MeterProvider, stats PoolStatsFunc, log *zap.Logger) (metric.Registration, error) {
	meter := mp.Meter("parish.database")

	open, err := meter.Int64ObservableGauge("db_pool_open_connections",
		metric.WithDescription("Open connections, in use and idle"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_open_connections: %w", err)
	}
	inUse, err := meter.Int64ObservableGauge("db_pool_in_use",
		metric.WithDescription("Connections currently in use"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_in_use: %w", err)
	}
	idle, err := meter.Int64ObservableGauge("db_pool_idle",
		metric.WithDescription("Idle connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_idle: %w", err)
	}
	maxOpen, err := meter.Int64ObservableGauge("db_pool_max_open",
		metric.WithDescription("Configured maximum of open connections"),
		metric.WithUnit("{connection}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge db_pool_max_open: %w", err)
	}
	waits, err := meter.Int64ObservableCounter("db_pool_wait_count_total",
		metric.WithDescription("Connections waited for"),
		metric.WithUnit("{wait}"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter db_pool_wait_count_total: %w", err)
	}

	return meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		s, err := stats()
		if err != nil {
			log.Warn("Failed to read database pool stats", zap.Error(err))
			return nil
		}
		o.ObserveInt64(open, int64(s.OpenConnections))
		o.ObserveInt64(inUse, int64(s.InUse))
		o.ObserveInt64(idle, int64(s.Idle))
		o.ObserveInt64(maxOpen, int64(s.MaxOpenConnections))
		o.ObserveInt64(waits, s.WaitCount)
		return nil
	}, open, inUse, idle, maxOpen, waits)
}
