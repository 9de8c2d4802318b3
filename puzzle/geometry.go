// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package puzzle provides the Sudoku solving engine: violation
// detection, single-candidate constraint propagation, and
// backtracking search over standard 9x9 grids.
//
// Grids are made of cells which are either empty (represented
// with a 0 value) or hold a digit between 1 and 9.  Cells are
// addressed by (row, column) coordinates starting at (0, 0) in
// the top-left corner and increasing left-to-right,
// top-to-bottom (English reading order).
//
// Every cell belongs to exactly three units: its row, its
// column, and its 3x3 box.  A grid is solved when all 27 units
// each contain the digits 1 through 9 exactly once.
package puzzle

/*

Grid geometry

There is only one geometry in this module: the standard 9x9
Sudoku grid with 3x3 boxes.  Everything here is a pure function
of its inputs; no geometry state is ever stored.

*/

// Geometry constants for the standard grid.
const (
	SideLen   = 9                 // cells per unit
	BoxLen    = 3                 // side of a box
	CellCount = SideLen * SideLen // cells per grid
)

// A Grid is a 9x9 array of cell values in [0,9], 0 meaning
// empty.  Grids are value objects: assigning or passing one
// makes a copy, so no two logical owners ever share cell
// storage.  The backtracking searcher relies on this for
// branch isolation.
type Grid [SideLen][SideLen]int

// A Coordinate names one cell by row and column, each in [0,8].
// Coordinates compare by value; two are equal iff both fields
// match.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// New builds a Grid from exactly 81 values in reading order.
// Values must be in [0,9]; anything else is rejected with an
// Error rather than silently degraded.
func New(values []int) (Grid, error) {
	var g Grid
	if len(values) != CellCount {
		return g, sizeError(len(values))
	}
	for i, v := range values {
		if v < 0 || v > SideLen {
			return g, valueError(v, i)
		}
		g[i/SideLen][i%SideLen] = v
	}
	return g, nil
}

// Values returns the grid's cells as a flat slice in reading
// order, the inverse of New.  The slice shares no storage with
// the grid.
func (g Grid) Values() []int {
	vs := make([]int, 0, CellCount)
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			vs = append(vs, g[r][c])
		}
	}
	return vs
}

// BoxIndex returns the index in [0,8] of the 3x3 box containing
// the cell at (row, col).  Boxes are numbered in reading order:
// box 0 is top-left, box 8 bottom-right.
func BoxIndex(row, col int) int {
	return row/BoxLen*BoxLen + col/BoxLen
}

// boxOrigin returns the top-left anchor of a box.
func boxOrigin(box int) (row, col int) {
	return box / BoxLen * BoxLen, box % BoxLen * BoxLen
}

// Row returns the 9 values of row r, left to right.
func (g Grid) Row(r int) []int {
	vs := make([]int, SideLen)
	copy(vs, g[r][:])
	return vs
}

// Column returns the 9 values of column c, top to bottom.
func (g Grid) Column(c int) []int {
	vs := make([]int, SideLen)
	for r := 0; r < SideLen; r++ {
		vs[r] = g[r][c]
	}
	return vs
}

// Box returns the 9 values of a box in reading order within the
// 3x3 block (top-left to bottom-right).
func (g Grid) Box(box int) []int {
	br, bc := boxOrigin(box)
	vs := make([]int, 0, SideLen)
	for r := br; r < br+BoxLen; r++ {
		for c := bc; c < bc+BoxLen; c++ {
			vs = append(vs, g[r][c])
		}
	}
	return vs
}

/*

Peers

*/

// rowPeers returns the coordinates of the 8 other cells in the
// row of (r, c).
func rowPeers(r, c int) []Coordinate {
	peers := make([]Coordinate, 0, SideLen-1)
	for i := 0; i < SideLen; i++ {
		if i != c {
			peers = append(peers, Coordinate{r, i})
		}
	}
	return peers
}

// columnPeers returns the coordinates of the 8 other cells in
// the column of (r, c).
func columnPeers(r, c int) []Coordinate {
	peers := make([]Coordinate, 0, SideLen-1)
	for i := 0; i < SideLen; i++ {
		if i != r {
			peers = append(peers, Coordinate{i, c})
		}
	}
	return peers
}

// boxPeers returns the coordinates of the 8 other cells in the
// box of (r, c), in reading order within the box.
func boxPeers(r, c int) []Coordinate {
	br, bc := boxOrigin(BoxIndex(r, c))
	peers := make([]Coordinate, 0, SideLen-1)
	for i := br; i < br+BoxLen; i++ {
		for j := bc; j < bc+BoxLen; j++ {
			if i != r || j != c {
				peers = append(peers, Coordinate{i, j})
			}
		}
	}
	return peers
}
