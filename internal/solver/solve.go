// Package solver implements a deductive Sudoku solver.  A board is lifted
// into a tracker of remaining possibilities, reduced to a fixed point by a
// queue of elimination rules, and completed by a depth-first search that
// forks the tracker on an undecided cell whenever deduction alone is not
// enough.
package solver

import (
	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/trace"
)

// frame is one pending branch of the search.
type frame struct {
	depth int
	rem   *tracker
	rec   trace.Recorder
}

// Solve attempts to complete the board.  It returns the first solution
// found in the solver's fixed search order and true, or a zero board and
// false when no completion exists.  The same input always produces the
// same output.
func Solve(b puzzle.Board) (puzzle.Board, bool) {
	return SolveTraced(b, trace.NopRecorder{})
}

// SolveTraced is Solve with an observer for every deduction.  If rec also
// implements trace.Forker it is forked once per speculative guess, giving
// recorders like trace.TreeRecorder the full shape of the search.
func SolveTraced(b puzzle.Board, rec trace.Recorder) (puzzle.Board, bool) {
	stack := []frame{{depth: 0, rem: newTracker(&b), rec: rec}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		printProgress("Reducing board at depth %d", f.depth)

		if !reduce(f.rem, f.rec) {
			resolve(f.rec, trace.OutcomeUnsolveable)
			continue
		}
		if f.rem.solved() {
			printProgress("Board solved at depth %d", f.depth)
			resolve(f.rec, trace.OutcomeSolved)
			return f.rem.board(), true
		}

		c, avail, ok := f.rem.branchCell()
		if !ok {
			continue
		}
		pushed := 0
		for _, d := range avail.Digits() {
			child := f.rem.specify(c, d, avail)
			childRec := fork(f.rec, c, d)
			if child.knownUnsolveable() {
				resolve(childRec, trace.OutcomeUnsolveable)
				continue
			}
			stack = append(stack, frame{depth: f.depth + 1, rem: child, rec: childRec})
			pushed++
		}
		printProgress("Forked %d boards on %s at depth %d", pushed, c, f.depth+1)
	}
	return puzzle.Board{}, false
}

// IsSolved reports whether the board is already a complete, valid solution.
func IsSolved(b puzzle.Board) bool {
	return newTracker(&b).solved()
}

// KnownUnsolveable reports whether the board carries a directly detectable
// contradiction: a cell with no remaining candidates, or a row, column, or
// box that has lost all copies of some digit.
func KnownUnsolveable(b puzzle.Board) bool {
	return newTracker(&b).knownUnsolveable()
}

func fork(rec trace.Recorder, c grid.Cell, d digits.Digit) trace.Recorder {
	if f, ok := rec.(trace.Forker); ok {
		return f.Fork(c, d)
	}
	return rec
}

func resolve(rec trace.Recorder, outcome trace.Outcome) {
	if f, ok := rec.(trace.Forker); ok {
		f.Resolve(outcome)
	}
}
