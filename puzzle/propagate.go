// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

/*

Constraint propagation

A propagation pass has two phases.  The naked-singles phase
scans the grid in reading order, computing the candidate set of
every empty cell: a cell with exactly one candidate is assigned
on the spot (which narrows the candidates of cells visited later
in the same pass), and any other candidate set is recorded for
the second phase.  The hidden-singles phase then looks for a
recorded candidate that no peer in some unit can take; such a
candidate must go in that cell.

The recorded candidate sets are deliberately transient.  They
live in a workingSets value owned by one call to propagateOnce
and are never stored in the grid, so the grid a caller sees only
ever contains 0 or a final digit.

*/

// workingSets holds the per-cell candidate annotations for one
// propagation pass.
type workingSets struct {
	sets [SideLen][SideLen]intset
	have [SideLen][SideLen]bool
}

// candidatesFor computes the digits the empty cell at (r, c)
// could hold: {1..9} minus everything already present in its
// row, column, and box.  The result is in ascending order.
func (g Grid) candidatesFor(r, c int) intset {
	var used [SideLen + 1]bool
	for i := 0; i < SideLen; i++ {
		if v := g[r][i]; v > 0 {
			used[v] = true
		}
		if v := g[i][c]; v > 0 {
			used[v] = true
		}
	}
	br, bc := boxOrigin(BoxIndex(r, c))
	for i := br; i < br+BoxLen; i++ {
		for j := bc; j < bc+BoxLen; j++ {
			if v := g[i][j]; v > 0 {
				used[v] = true
			}
		}
	}
	var cs intset
	for v := 1; v <= SideLen; v++ {
		if !used[v] {
			cs = append(cs, v)
		}
	}
	return cs
}

// resolveNakedSingles assigns every empty cell whose candidate
// set has exactly one member, scanning in reading order so that
// each assignment narrows the cells after it in the same pass.
// Cells with larger candidate sets are recorded in w for the
// hidden-singles phase.  Returns whether any cell was assigned.
func resolveNakedSingles(g *Grid, w *workingSets) bool {
	changed := false
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if g[r][c] != 0 {
				continue
			}
			cs := g.candidatesFor(r, c)
			if len(cs) == 1 {
				g[r][c] = cs[0]
				changed = true
				continue
			}
			w.sets[r][c], w.have[r][c] = cs, true
		}
	}
	return changed
}

// resolveHiddenSingles assigns every recorded cell that is the
// only place in one of its units where some candidate can go.
// Units are tried row first, then column, then box: the box is
// the most expensive to walk, so it goes last, and the first
// success stops the checks for that cell.  Returns whether any
// cell was assigned.
func resolveHiddenSingles(g *Grid, w *workingSets) bool {
	changed := false
	for r := 0; r < SideLen; r++ {
		for c := 0; c < SideLen; c++ {
			if !w.have[r][c] || g[r][c] != 0 {
				continue
			}
			if v, ok := hiddenSingleAt(g, w, r, c); ok {
				g[r][c] = v
				w.have[r][c] = false
				changed = true
			}
		}
	}
	return changed
}

// hiddenSingleAt finds the first candidate of (r, c), in
// ascending order, that no peer in the cell's row, column, or
// box can still take.  The recorded candidate set may be stale
// after same-pass assignments, so each candidate is checked
// against the live grid before being considered.
func hiddenSingleAt(g *Grid, w *workingSets, r, c int) (int, bool) {
	live := g.candidatesFor(r, c)
	units := [3][]Coordinate{rowPeers(r, c), columnPeers(r, c), boxPeers(r, c)}
	for _, peers := range units {
		for _, v := range w.sets[r][c] {
			if _, ok := live.find(v); !ok {
				continue
			}
			if !anyPeerAdmits(g, w, peers, v) {
				return v, true
			}
		}
	}
	return 0, false
}

// anyPeerAdmits reports whether any of the given empty peer
// cells could still hold v, consulting the recorded candidate
// set when one exists and the live grid otherwise.
func anyPeerAdmits(g *Grid, w *workingSets, peers []Coordinate, v int) bool {
	for _, p := range peers {
		if g[p.Row][p.Col] != 0 {
			continue
		}
		if w.have[p.Row][p.Col] {
			if _, ok := w.sets[p.Row][p.Col].find(v); ok {
				return true
			}
			continue
		}
		if _, ok := g.candidatesFor(p.Row, p.Col).find(v); ok {
			return true
		}
	}
	return false
}

// propagateOnce runs one full pass: naked singles, then hidden
// singles.  The working candidate sets are dropped when the
// pass ends, so the grid handed back holds only 0 or final
// digits.  Returns whether the pass assigned anything; the
// orchestrator calls this until it reports no change.
func propagateOnce(g *Grid) bool {
	var w workingSets
	naked := resolveNakedSingles(g, &w)
	hidden := resolveHiddenSingles(g, &w)
	return naked || hidden
}

/*

Integer sets

An intset is a set of small integers represented as a sorted
slice.  Candidate sets are intsets, which keeps candidate
iteration in ascending order for free.

*/

type intset []int

// newIntsetRange makes an intset holding 1 through max.
func newIntsetRange(max int) intset {
	if max < 1 {
		return intset{}
	}
	out := make(intset, max)
	for i := 0; i < max; i++ {
		out[i] = i + 1
	}
	return out
}

// find looks for value v, returning where it is (or should be)
// in the intset and whether it was found there.
func (ps intset) find(v int) (int, bool) {
	end := len(ps)
	where := end
	for i := 0; i < end; i++ {
		if ps[i] == v {
			return i, true
		}
		if ps[i] > v {
			where = i
			break
		}
	}
	return where, false
}

// remove deletes value v, returning whether it was there.
func (ps *intset) remove(v int) bool {
	end := len(*ps)
	for i := 0; i < end; i++ {
		pv := (*ps)[i]
		if pv == v {
			copy((*ps)[i:], (*ps)[i+1:])
			*ps = (*ps)[:end-1]
			return true
		}
		if pv > v {
			return false
		}
	}
	return false
}
