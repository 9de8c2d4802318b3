// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// newMigrator builds a migrator over the embedded migration
// scripts, targeting the given database.
func newMigrator(databaseURL string) (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("migrator for %q: %w", databaseURL, err)
	}
	return m, nil
}

// SchemaUp migrates the database to the latest schema version.
// An already-current database is not an error.
func SchemaUp(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("schema up: %w", err)
	}
	return nil
}

// SchemaDown removes the entire schema.  An already-empty
// database is not an error.
func SchemaDown(databaseURL string) error {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("schema down: %w", err)
	}
	return nil
}

// SchemaVersion reports the current schema version; applied is
// false for a never-migrated database.
func SchemaVersion(databaseURL string) (version uint, applied bool, err error) {
	m, err := newMigrator(databaseURL)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("schema version: %w", err)
	}
	if dirty {
		return version, true, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, true, nil
}
