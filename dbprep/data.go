// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/siriousje/sodoku-solver/catalog"
)

/*

Seed data

The boards table is seeded from the built-in catalog.  Seeding
is idempotent: existing rows are left alone so a re-run never
clobbers boards added by other means.

*/

// insertSamples adds every catalog board that isn't already in
// the table.
func insertSamples(ctx context.Context, conn *pgx.Conn) error {
	for _, b := range catalog.All() {
		_, err := conn.Exec(ctx,
			"INSERT INTO boards (board_id, rating, value_list) VALUES ($1, $2, $3)"+
				" ON CONFLICT (board_id) DO NOTHING",
			b.ID, b.Rating, b.Values)
		if err != nil {
			return fmt.Errorf("insert board %q: %w", b.ID, err)
		}
	}
	return nil
}

// deleteSamples removes the catalog boards, leaving any boards
// added by other means.
func deleteSamples(ctx context.Context, conn *pgx.Conn) error {
	for _, id := range catalog.IDs() {
		if _, err := conn.Exec(ctx, "DELETE FROM boards WHERE board_id = $1", id); err != nil {
			return fmt.Errorf("delete board %q: %w", id, err)
		}
	}
	return nil
}

// applyFunctions runs the given steps against one database
// connection, opened and closed here.
func applyFunctions(ctx context.Context, databaseURL string,
	fns ...func(context.Context, *pgx.Conn) error) error {
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("connect to %q: %w", databaseURL, err)
	}
	defer conn.Close(ctx)
	for _, fn := range fns {
		if err := fn(ctx, conn); err != nil {
			return err
		}
	}
	return nil
}
