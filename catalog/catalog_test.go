// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package catalog

import (
	"reflect"
	"testing"

	"github.com/siriousje/sodoku-solver/puzzle"
)

func TestLookup(t *testing.T) {
	b, ok := Lookup("3-star")
	if !ok {
		t.Fatalf("TestLookup: 3-star not found")
	}
	if b.ID != "3-star" || b.Rating != 3 || len(b.Values) != puzzle.CellCount {
		t.Errorf("TestLookup: unexpected board %+v", b)
	}
	if _, ok := Lookup("7-star"); ok {
		t.Errorf("TestLookup: found a board that doesn't exist")
	}
}

func TestDefault(t *testing.T) {
	b := Default()
	if b.ID != DefaultID {
		t.Errorf("TestDefault: default board is %q (expected %q)", b.ID, DefaultID)
	}
}

func TestIDs(t *testing.T) {
	want := []string{"1-star", "2-star", "3-star", "4-star", "5-star", "6-star"}
	if got := IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("TestIDs: got %v (expected %v)", got, want)
	}
}

// Every catalog board must be accepted by the engine, contain no
// violations, and actually have a solution.
func TestBoardsAreSolvable(t *testing.T) {
	all := All()
	if len(all) != 6 {
		t.Fatalf("TestBoardsAreSolvable: %d boards (expected 6)", len(all))
	}
	for i, b := range all {
		g, err := b.Grid()
		if err != nil {
			t.Errorf("TestBoardsAreSolvable case %d (%s): bad board: %v", i+1, b.ID, err)
			continue
		}
		if _, found := g.FindViolations(); found {
			t.Errorf("TestBoardsAreSolvable case %d (%s): board has violations", i+1, b.ID)
			continue
		}
		o := puzzle.Solve(g)
		if o.Result != puzzle.Solved {
			t.Errorf("TestBoardsAreSolvable case %d (%s): result %v (expected %v)",
				i+1, b.ID, o.Result, puzzle.Solved)
		}
	}
}
