// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"sort"
)

/*

Grid validation

Two separate questions are answered here: is a grid completely
and correctly solved, and which cells of a partial grid break
the one-of-each-digit rule.  The second runs live on every cell
edit in the UI, so it gets its own entry point independent of
solving.

*/

// isCompleteUnit reports whether a unit's values are exactly a
// permutation of 1..9.  Anything that isn't 9 values is false,
// so malformed input reads as "not solved" rather than a panic.
func isCompleteUnit(values []int) bool {
	if len(values) != SideLen {
		return false
	}
	var seen [SideLen + 1]bool
	for _, v := range values {
		if v < 1 || v > SideLen || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// IsSolved reports whether every row, column, and box of the
// grid is a complete unit.
func (g Grid) IsSolved() bool {
	for i := 0; i < SideLen; i++ {
		if !isCompleteUnit(g.Row(i)) ||
			!isCompleteUnit(g.Column(i)) ||
			!isCompleteUnit(g.Box(i)) {
			return false
		}
	}
	return true
}

// duplicatePositions finds the unit-local indices of all cells
// participating in a duplicate.  A non-zero value that occurs
// more than once marks every occurrence, not just the later
// ones.
func duplicatePositions(unit []int) []int {
	var counts [SideLen + 1]int
	for _, v := range unit {
		if v >= 1 && v <= SideLen {
			counts[v]++
		}
	}
	var dups []int
	for i, v := range unit {
		if v >= 1 && v <= SideLen && counts[v] > 1 {
			dups = append(dups, i)
		}
	}
	return dups
}

/*

Violation sets

*/

// A ViolationSet names every cell that shares a non-zero value
// with another cell in some unit.  It is built fresh per
// validation call and has no lifecycle beyond it.
type ViolationSet map[Coordinate]struct{}

// NewViolationSet builds a set from explicit coordinates.
func NewViolationSet(coords ...Coordinate) ViolationSet {
	vs := make(ViolationSet, len(coords))
	for _, c := range coords {
		vs[c] = struct{}{}
	}
	return vs
}

// Has reports whether the set contains the given coordinate.
func (vs ViolationSet) Has(c Coordinate) bool {
	_, ok := vs[c]
	return ok
}

// Coordinates returns the set's members in reading order, for
// deterministic presentation.
func (vs ViolationSet) Coordinates() []Coordinate {
	coords := make([]Coordinate, 0, len(vs))
	for c := range vs {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
	return coords
}

// FindViolations checks every row, column, and box for repeated
// non-zero values and collects the coordinates of all offending
// cells.  A cell flagged by more than one unit appears once.
//
// The boolean return is the caller's gate: false means the grid
// has no violations at all, and the returned set is nil.  The
// set contents only matter when the boolean is true.
func (g Grid) FindViolations() (ViolationSet, bool) {
	vs := make(ViolationSet)
	for r := 0; r < SideLen; r++ {
		for _, i := range duplicatePositions(g.Row(r)) {
			vs[Coordinate{r, i}] = struct{}{}
		}
	}
	for c := 0; c < SideLen; c++ {
		for _, i := range duplicatePositions(g.Column(c)) {
			vs[Coordinate{i, c}] = struct{}{}
		}
	}
	for b := 0; b < SideLen; b++ {
		br, bc := boxOrigin(b)
		for _, i := range duplicatePositions(g.Box(b)) {
			vs[Coordinate{br + i/BoxLen, bc + i%BoxLen}] = struct{}{}
		}
	}
	if len(vs) == 0 {
		return nil, false
	}
	return vs, true
}
