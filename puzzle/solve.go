// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"time"
)

/*

Solve orchestration

Solve checks the input for rule violations, runs constraint
propagation to fixpoint, and falls back to backtracking search.
Propagation cannot fail (it only assigns or leaves cells alone)
and search failure never escapes as an error: the orchestrator
reclassifies it as Deadlock.  The caller always receives exactly
one of the three results.

*/

// A Result classifies the end state of a solve attempt.
type Result int

// The three possible solve results.
const (
	Solved   Result = iota // grid completed; Outcome.Grid holds it
	Invalid                // input breaks the rules; Outcome.Violations names the cells
	Deadlock               // no violation found, yet no assignment sequence completes the grid
)

// String renders a Result for messages and serialized outcomes.
func (r Result) String() string {
	switch r {
	case Solved:
		return "solved"
	case Invalid:
		return "invalid"
	case Deadlock:
		return "deadlock"
	}
	return "unknown"
}

// An Outcome is the complete answer to one solve call.  Grid is
// meaningful only when Result is Solved; Violations only when
// Result is Invalid.  Elapsed covers the whole attempt,
// propagation and search included.
type Outcome struct {
	Result     Result
	Grid       Grid
	Violations ViolationSet
	Elapsed    time.Duration
}

// Solve runs the full pipeline on a grid: a violation check,
// propagation to fixpoint, a completion check, and backtracking
// search if needed.  It is a pure function of the input grid;
// the input is never mutated.
func Solve(g Grid) Outcome {
	start := time.Now()

	// A unit duplicate survives every assignment, so no amount
	// of searching can complete such a grid.  Classify it up
	// front instead of exhausting the search tree to find out.
	if vs, found := g.FindViolations(); found {
		return Outcome{Result: Invalid, Violations: vs, Elapsed: time.Since(start)}
	}

	work := g
	for propagateOnce(&work) {
	}
	if work.IsSolved() {
		return Outcome{Result: Solved, Grid: work, Elapsed: time.Since(start)}
	}

	if solved, ok := search(work); ok && solved.IsSolved() {
		return Outcome{Result: Solved, Grid: solved, Elapsed: time.Since(start)}
	}
	return Outcome{Result: Deadlock, Elapsed: time.Since(start)}
}
