// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

package puzzle

import (
	"fmt"
)

/*

Pretty-printed grids in strings, for logs and the console
client.  These add no behavior; they just render what the engine
computed.

*/

// String gives a bordered, human-readable view of the grid.
// Columns are numbered 1-9, rows lettered a-i, and box
// boundaries drawn with | and +--- rules.  Empty cells show as
// an underscore.
func (g Grid) String() (result string) {
	// header row with column numbers
	result += " "
	for i := 0; i < SideLen; i++ {
		if i%BoxLen != 0 {
			result += " "
		} else {
			result += "|"
		}
		result += fmt.Sprintf("%2d ", i+1)
	}
	result += "\n"
	// the rows, with a rule above each band of boxes
	for r, rowhdr := 0, 'a'; r < SideLen; r, rowhdr = r+1, rowhdr+1 {
		if r%BoxLen == 0 {
			result += " "
			for i := 0; i < SideLen; i++ {
				result += "+---"
			}
			result += "\n"
		}
		result += string(rowhdr)
		for c := 0; c < SideLen; c++ {
			if c%BoxLen != 0 {
				result += " "
			} else {
				result += "|"
			}
			if v := g[r][c]; v != 0 {
				result += fmt.Sprintf(" %d ", v)
			} else {
				result += " _ "
			}
		}
		result += "\n"
	}
	return
}

// String summarizes an outcome in one or more lines,
// distinguishing fixable violations from structural dead ends.
func (o Outcome) String() (result string) {
	switch o.Result {
	case Solved:
		result = fmt.Sprintf("solved in %v\n%v", o.Elapsed, o.Grid)
	case Invalid:
		result = "invalid board, duplicate values at:"
		for _, c := range o.Violations.Coordinates() {
			result += fmt.Sprintf(" (%d,%d)", c.Row, c.Col)
		}
		result += "\n"
	case Deadlock:
		result = "no solution: the board has no rule violation " +
			"but cannot be completed\n"
	default:
		result = fmt.Sprintf("unknown outcome %d\n", o.Result)
	}
	return
}
