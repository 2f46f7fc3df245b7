package sqlite3

import (
	"database/sql"
	"errors"
	embedded "statcard"

	"github.com/golang-migrate/migrate/v4/database/sqlite3"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func UpSamplesDB(db *sql.DB) error {
	sourceDriver, err := iofs.New(embedded.SampleMigrations, "migrations")
	if err != nil {
		return err
	}
	databaseDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs",
		sourceDriver,
		"samples", databaseDriver)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
