// Package migration creates the dataset tables used by the Postgres source.
package migration

import (
	"database/sql"
	"embed"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Up applies every pending migration. It opens its own connection because
// closing the migrate instance closes the underlying pool.
func Up(dsn string) error {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return errors.Wrap(err, "open migration database")
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return errors.Wrap(err, "create postgres driver")
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "create iofs source")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "run migrations")
	}

	return nil
}
