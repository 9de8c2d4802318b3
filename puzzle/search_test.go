// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"reflect"
	"testing"
)

func TestSearchSolvesFiveStar(t *testing.T) {
	g := mustGrid(t, fiveStarValues)
	solved, ok := search(g)
	if !ok {
		t.Fatalf("TestSearchSolvesFiveStar: search failed")
	}
	if !reflect.DeepEqual(solved.Values(), fiveStarSolvedValues) {
		t.Errorf("TestSearchSolvesFiveStar: solution is %v (expected %v)",
			solved.Values(), fiveStarSolvedValues)
	}
}

func TestSearchAlreadySolved(t *testing.T) {
	g := mustGrid(t, rotationSolvedValues)
	solved, ok := search(g)
	if !ok {
		t.Fatalf("TestSearchAlreadySolved: search failed on a solved grid")
	}
	if solved != g {
		t.Errorf("TestSearchAlreadySolved: solved grid changed:\n%v\n%v", g, solved)
	}
}

func TestSearchDeadCell(t *testing.T) {
	g := mustGrid(t, deadlockValues())
	if solved, ok := search(g); ok {
		t.Errorf("TestSearchDeadCell: search succeeded on a dead grid:\n%v", solved)
	}
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	g := mustGrid(t, sixStarValues)
	before := g
	search(g)
	if g != before {
		t.Errorf("TestSearchDoesNotMutateInput: input grid changed")
	}
}
