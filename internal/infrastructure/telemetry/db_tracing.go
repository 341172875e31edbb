package telemetry

import (
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds configuration for database tracing.
type DBTracingConfig struct {
	Enabled bool
	// Driver selects the db.system attribute
	Driver string
	// IncludeVariables puts bound values into span statements. Leave off
	// outside development: values include donor names and password hashes.
	IncludeVariables bool
}

// RegisterDBTracing installs the otelgorm plugin so every query becomes a
// child span of the request span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	system := "postgresql"
	if cfg.Driver == config.DriverSQLite {
		system = "sqlite"
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(system)}
	if !cfg.IncludeVariables {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.String("db_system", system),
		zap.Bool("include_variables", cfg.IncludeVariables),
	)
	return nil
}
