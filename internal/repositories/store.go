// Package repositories opens the configured storage backend and exposes it
// as a repository provider.
package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_tracker/internal/repositories/database/sqlite"
	"github.com/SscSPs/expense_tracker/pkg/database"
	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store is an open storage backend.
type Store struct {
	Driver database.Driver
	Repos  portsrepo.RepositoryProvider

	dsn   string
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

// Open connects to the database named by databaseURL. When ping is true the
// connection is verified before returning.
func Open(ctx context.Context, databaseURL string, ping bool) (*Store, error) {
	driver, dsn, err := database.ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	s := &Store{Driver: driver, dsn: dsn}
	switch driver {
	case database.DriverPostgres:
		s.pool, err = database.NewPgxPool(ctx, dsn, ping)
		if err != nil {
			return nil, err
		}
		s.Repos = pgsql.NewRepositoryProvider(s.pool)
	case database.DriverSQLite:
		s.sqlDB, err = database.OpenSQLite(ctx, dsn, ping)
		if err != nil {
			return nil, err
		}
		s.Repos = sqlite.NewRepositoryProvider(s.sqlDB)
	}
	return s, nil
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s.pool != nil {
		database.ClosePgxPool(s.pool)
	}
	if s.sqlDB != nil {
		if err := s.sqlDB.Close(); err != nil {
			slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
		}
	}
}

// withMigrator runs fn against a migrate instance for the store. PostgreSQL
// migrations run over their own database/sql handle; SQLite shares the open
// handle, so that migrator is left open.
func (s *Store) withMigrator(fn func(*migrate.Migrate) error) error {
	if s.Driver == database.DriverSQLite {
		m, err := database.NewMigrator(s.sqlDB, s.Driver)
		if err != nil {
			return err
		}
		return fn(m)
	}

	migrationDB, err := sql.Open("pgx", s.dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	m, err := database.NewMigrator(migrationDB, s.Driver)
	if err != nil {
		_ = migrationDB.Close()
		return err
	}
	defer func() {
		sourceErr, dbErr := m.Close()
		if sourceErr != nil {
			slog.Error("Migration source error", slog.String("error", sourceErr.Error()))
		}
		if dbErr != nil {
			slog.Error("Migration database error", slog.String("error", dbErr.Error()))
		}
	}()
	return fn(m)
}

// Migrate applies pending schema migrations and reports whether any ran.
func (s *Store) Migrate() (bool, error) {
	var changed bool
	err := s.withMigrator(func(m *migrate.Migrate) error {
		var err error
		changed, err = database.MigrateUp(m)
		return err
	})
	return changed, err
}

// Reset drops and recreates the schema. All data is lost.
func (s *Store) Reset() error {
	return s.withMigrator(database.MigrateReset)
}

// SchemaVersion returns the applied migration version.
func (s *Store) SchemaVersion() (uint, bool, error) {
	var (
		version uint
		dirty   bool
	)
	err := s.withMigrator(func(m *migrate.Migrate) error {
		var err error
		version, dirty, err = database.MigrationVersion(m)
		return err
	})
	return version, dirty, err
}
