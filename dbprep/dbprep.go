// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package dbprep prepares the solver's storage: it migrates the
// Postgres schema, seeds the sample boards from the catalog, and
// clears the Redis cache.  The prepare-storage command is a thin
// wrapper over this package; tests use it to get a known-state
// database.
package dbprep

import (
	"context"

	"github.com/siriousje/sodoku-solver/storage"
)

// EnsureData brings the schema up to date and seeds any missing
// sample boards.  Idempotent.
func EnsureData(ctx context.Context) error {
	databaseURL := storage.DatabaseURL()
	if err := SchemaUp(databaseURL); err != nil {
		return err
	}
	return applyFunctions(ctx, databaseURL, insertSamples)
}

// RemoveData deletes the seeded sample boards and clears the
// cache; the schema stays in place.
func RemoveData(ctx context.Context) error {
	if err := applyFunctions(ctx, storage.DatabaseURL(), deleteSamples); err != nil {
		return err
	}
	return ClearCache(storage.RedisURL())
}

// ReinitializeAll tears the schema down, rebuilds it, reseeds
// the sample boards, and clears the cache.  Everything in the
// database is lost.
func ReinitializeAll(ctx context.Context) error {
	databaseURL := storage.DatabaseURL()
	if err := SchemaDown(databaseURL); err != nil {
		return err
	}
	if err := SchemaUp(databaseURL); err != nil {
		return err
	}
	if err := applyFunctions(ctx, databaseURL, insertSamples); err != nil {
		return err
	}
	return ClearCache(storage.RedisURL())
}
