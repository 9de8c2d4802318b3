// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Backtracking search

When propagation stalls, the searcher runs a depth-first search
over the remaining empty cells.  Branching order is fixed: the
first empty cell in reading order, candidates in ascending
order.  The first solution found along that order is returned,
so the search is deterministic for a given input.

Branch isolation comes from Grid being a value type: every
recursive call and every candidate branch gets its own copy, so
sibling branches never observe each other's assignments.
Recursion depth is bounded by the number of empty cells, at most
81.

*/

// search tries to complete the grid.  The receiver copy is the
// searcher's to mutate; the caller's grid is untouched.  The
// boolean reports success; on failure the returned grid is
// meaningless.
func search(g Grid) (Grid, bool) {
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] != 0 {
				continue
			}
			cands := g.candidatesFor(r, c)
			switch len(cands) {
			case 0:
				// dead branch: some cell can hold nothing
				return Grid{}, false
			case 1:
				g[r][c] = cands[0]
				if g.IsSolved() {
					return g, true
				}
				// nothing branched, keep scanning this grid
				continue
			default:
				for _, v := range cands {
					next := g
					next[r][c] = v
					if solved, ok := search(next); ok {
						return solved, true
					}
				}
				return Grid{}, false
			}
		}
	}
	// no empty cell left; only a solved grid counts
	if g.IsSolved() {
		return g, true
	}
	return Grid{}, false
}
