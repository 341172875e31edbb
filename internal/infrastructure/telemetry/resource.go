// Package telemetry wires OpenTelemetry traces, metrics and logs plus
// Pyroscope profiling into the parish API.
package telemetry

import (
	"fmt"

	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

// ServiceVersion is reported on every exported signal
const ServiceVersion = "1.0.0"

func newResource(serviceName string) (*resource.Resource, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// Config holds tracing configuration.
type Config struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// FromConfig extracts the tracing, metrics, logs and profiling settings
func FromConfig(cfg config.TelemetryConfig) (Config, MetricsConfig, LogsConfig, ProfilerConfig) {
	return Config{
			Enabled:           cfg.Enabled,
			CollectorEndpoint: cfg.CollectorEndpoint,
			SamplingRatio:     cfg.SamplingRatio,
			ServiceName:       cfg.ServiceName,
			Insecure:          cfg.Insecure,
		}, MetricsConfig{
			Enabled:           cfg.Enabled && cfg.MetricsEnabled,
			CollectorEndpoint: cfg.CollectorEndpoint,
			ExportInterval:    cfg.MetricsInterval,
			ServiceName:       cfg.ServiceName,
			Insecure:          cfg.Insecure,
		}, LogsConfig{
			Enabled:           cfg.Enabled && cfg.LogsEnabled,
			CollectorEndpoint: cfg.CollectorEndpoint,
			ServiceName:       cfg.ServiceName,
			Insecure:          cfg.Insecure,
		}, ProfilerConfig{
			Enabled:         cfg.ProfilingEnabled,
			ServerAddress:   cfg.PyroscopeAddress,
			ApplicationName: cfg.ServiceName,
			SpanLabels:      cfg.Enabled && cfg.ProfileSpanLabels,
		}
}
