// Package trace records the individual deductions made while reducing a
// board, for callers that want to inspect or replay how a solution was
// reached.  Recording is optional; the solver takes a no-op recorder by
// default.
package trace

import (
	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
)

// A Snapshot captures the remaining digit sets of all 81 cells at the time
// a deduction was recorded.  Snapshots are copies and borrow nothing from
// the solver state.
type Snapshot [grid.NumCells]digits.Set

// Board lowers the snapshot to a plain 81-entry value grid, with zero for
// cells that are not yet singular.
func (s *Snapshot) Board() [grid.NumCells]uint8 {
	var b [grid.NumCells]uint8
	for i, set := range s {
		if d, ok := set.Single(); ok {
			b[i] = uint8(d)
		}
	}
	return b
}

// A Recorder observes deductions as the reducer makes them.  The reducer
// calls Record once with an InitialState reason before draining its queue,
// and then after every step that changed at least one cell or proved the
// board unsolveable.
type Recorder interface {
	Record(reason Reason, remaining Snapshot)
}

// NopRecorder discards everything it is given.
type NopRecorder struct{}

// Record implements Recorder.
func (NopRecorder) Record(Reason, Snapshot) {}

// A Forker is a Recorder that also follows the branching search.  The
// driver upgrades its recorder to a Forker when possible, calling Fork once
// per speculative guess and Resolve when the fate of a branch is known.
type Forker interface {
	Recorder

	// Fork returns the recorder for the branch that fixes cell to digit.
	Fork(cell grid.Cell, digit digits.Digit) Recorder

	// Resolve reports how the current branch ended.
	Resolve(outcome Outcome)
}

// Outcome is the fate of one branch of the search.
type Outcome string

const (
	// OutcomeOpen marks a branch with no outcome of its own: one that
	// forked into child branches, or one that was never explored because
	// a solution was found first.
	OutcomeOpen Outcome = "open"
	// OutcomeSolved marks the branch that produced the solution.
	OutcomeSolved Outcome = "solved"
	// OutcomeUnsolveable marks a branch that ended in a contradiction.
	OutcomeUnsolveable Outcome = "unsolveable"
)

// A Deduction pairs a reason with the cell state after the step ran.
type Deduction struct {
	Reason    Reason   `json:"reason"`
	Remaining Snapshot `json:"remaining"`
}
