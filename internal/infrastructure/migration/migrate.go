package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/praveenjayakumarramesh/st-joseph-church/internal/infrastructure/config"
	"github.com/praveenjayakumarramesh/st-joseph-church/migrations"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// Migrator applies the embedded schema using golang-migrate
type Migrator struct {
	migrate *migrate.Migrate
	source  source.Driver
	conn    *sql.Conn
	owned   bool
	logger  *zap.Logger
}

// Open connects to the configured database with a dedicated connection and
// returns a Migrator that owns it. Close releases the connection.
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*Migrator, error) {
	driverName := "postgres"
	if cfg.Driver == config.DriverSQLite {
		driverName = "sqlite"
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration database: %w", err)
	}

	m, err := newMigrator(db, cfg.Driver, logger, true)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

// New creates a Migrator on a borrowed connection pool. Close leaves db open.
func New(db *sql.DB, driver string, logger *zap.Logger) (*Migrator, error) {
	return newMigrator(db, driver, logger, false)
}

func newMigrator(db *sql.DB, driver string, logger *zap.Logger, owned bool) (*Migrator, error) {
	sub, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to create iofs source: %w", err)
	}

	var (
		dbDriver database.Driver
		conn     *sql.Conn
	)
	switch driver {
	case config.DriverPostgres:
		if owned {
			dbDriver, err = postgres.WithInstance(db, &postgres.Config{})
		} else {
			conn, err = db.Conn(context.Background())
			if err == nil {
				dbDriver, err = postgres.WithConnection(context.Background(), conn, &postgres.Config{})
			}
		}
	case config.DriverSQLite:
		dbDriver, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		_ = src.Close()
		if conn != nil {
			_ = conn.Close()
		}
		return nil, fmt.Errorf("failed to create %s driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, dbDriver)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return &Migrator{
		migrate: m,
		source:  src,
		conn:    conn,
		owned:   owned,
		logger:  logger,
	}, nil
}

// Up runs all pending migrations
func (m *Migrator) Up() error {
	m.logger.Info("Running migrations up")

	err := m.migrate.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.logger.Info("Migrations completed",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// Down rolls back all migrations
func (m *Migrator) Down() error {
	m.logger.Info("Running migrations down")

	err := m.migrate.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	m.logger.Info("All migrations rolled back")
	return nil
}

// Steps applies n migrations (positive = up, negative = down)
func (m *Migrator) Steps(n int) error {
	m.logger.Info("Running migration steps", zap.Int("steps", n))

	err := m.migrate.Steps(n)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("No migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration steps failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	m.logger.Info("Migration steps completed",
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

// GoTo migrates to a specific version
func (m *Migrator) GoTo(version uint) error {
	m.logger.Info("Migrating to version", zap.Uint("target_version", version))

	err := m.migrate.Migrate(version)
	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("Already at target version")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration to version %d failed: %w", version, err)
	}

	m.logger.Info("Migration to version completed", zap.Uint("version", version))
	return nil
}

// Version returns the current migration version. An empty schema is version 0.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.migrate.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// Force sets the migration version without running migrations.
// It is meant for repairing a dirty schema by hand.
func (m *Migrator) Force(version int) error {
	m.logger.Warn("Forcing migration version", zap.Int("version", version))

	if err := m.migrate.Force(version); err != nil {
		return fmt.Errorf("failed to force version %d: %w", version, err)
	}

	m.logger.Info("Migration version forced", zap.Int("version", version))
	return nil
}

// Close releases the source and, when the Migrator opened it, the database
func (m *Migrator) Close() error {
	if !m.owned {
		srcErr := m.source.Close()
		if m.conn != nil {
			if err := m.conn.Close(); err != nil {
				return fmt.Errorf("failed to release connection: %w", err)
			}
		}
		if srcErr != nil {
			return fmt.Errorf("failed to close source: %w", srcErr)
		}
		return nil
	}

	sourceErr, dbErr := m.migrate.Close()
	if sourceErr != nil {
		return fmt.Errorf("failed to close source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("failed to close database: %w", dbErr)
	}
	return nil
}
