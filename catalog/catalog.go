// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package catalog holds the predefined sample boards that ship
// with the solver.  Boards are identified by a star-rating ID;
// the ratings run from 1 (propagation alone solves it) to 6
// (multiple solutions, search required).
package catalog

import (
	"sort"

	"github.com/siriousje/sodoku-solver/puzzle"
)

// A Board is one catalog entry: a rated sample grid in the flat
// 81-value form the engine accepts.
type Board struct {
	ID     string `json:"id"`
	Rating int    `json:"rating"`
	Values []int  `json:"values"`
}

// Grid converts the board's values to an engine grid.
func (b Board) Grid() (puzzle.Grid, error) {
	return puzzle.New(b.Values)
}

var boards = map[string]Board{
	"1-star": {"1-star", 1, []int{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	}},
	"2-star": {"2-star", 2, []int{
		0, 1, 0, 5, 0, 6, 0, 2, 0,
		0, 0, 0, 0, 0, 3, 0, 1, 8,
		0, 0, 0, 0, 7, 0, 0, 0, 6,
		0, 0, 5, 0, 0, 0, 0, 3, 0,
		0, 0, 8, 0, 9, 0, 7, 0, 0,
		0, 6, 0, 0, 0, 0, 4, 0, 0,
		5, 0, 0, 0, 4, 0, 0, 0, 0,
		6, 4, 0, 2, 0, 0, 0, 0, 0,
		0, 3, 0, 9, 0, 1, 0, 8, 0,
	}},
	"3-star": {"3-star", 3, []int{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	}},
	"4-star": {"4-star", 4, []int{
		9, 4, 8, 0, 5, 0, 2, 0, 0,
		0, 0, 7, 8, 0, 3, 0, 0, 1,
		0, 5, 0, 0, 7, 0, 0, 0, 0,
		0, 7, 0, 0, 0, 0, 3, 0, 0,
		2, 0, 0, 6, 0, 5, 0, 0, 4,
		0, 0, 5, 0, 0, 0, 0, 9, 0,
		0, 0, 0, 0, 6, 0, 0, 1, 0,
		3, 0, 0, 5, 0, 9, 7, 0, 0,
		0, 0, 6, 0, 1, 0, 4, 2, 3,
	}},
	"5-star": {"5-star", 5, []int{
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		9, 0, 0, 5, 0, 7, 0, 3, 0,
		0, 0, 0, 1, 0, 0, 6, 0, 7,
		0, 4, 0, 0, 6, 0, 0, 8, 2,
		6, 7, 0, 0, 0, 0, 0, 1, 3,
		3, 8, 0, 0, 1, 0, 0, 9, 0,
		7, 0, 5, 0, 0, 8, 0, 0, 0,
		0, 2, 0, 3, 0, 9, 0, 0, 8,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	}},
	"6-star": {"6-star", 6, []int{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	}},
}

// DefaultID is the board served when a client hasn't picked one.
const DefaultID = "1-star"

// Lookup finds a board by ID.
func Lookup(id string) (Board, bool) {
	b, ok := boards[id]
	return b, ok
}

// Default returns the default board.
func Default() Board {
	return boards[DefaultID]
}

// All returns every board ordered by rating.
func All() []Board {
	bs := make([]Board, 0, len(boards))
	for _, b := range boards {
		bs = append(bs, b)
	}
	sort.Slice(bs, func(i, j int) bool { return bs[i].Rating < bs[j].Rating })
	return bs
}

// IDs returns every board ID ordered by rating.
func IDs() []string {
	ids := make([]string, 0, len(boards))
	for _, b := range All() {
		ids = append(ids, b.ID)
	}
	return ids
}
