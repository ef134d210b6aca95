package trace

import (
	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
)

// A Guess identifies the speculative assignment that opened a branch.
type Guess struct {
	Cell  CellRef `json:"cell"`
	Digit int     `json:"digit"`
}

// A Node is one branch of the search tree.  The root carries no guess;
// inner nodes carry the guess that created them; leaves end in a solution
// or a contradiction.  Branches abandoned when a solution was found stay
// open.
type Node struct {
	Guess      *Guess      `json:"guess,omitempty"`
	Deductions []Deduction `json:"deductions"`
	Outcome    Outcome     `json:"outcome"`
	Children   []*Node     `json:"children,omitempty"`
}

// A TreeRecorder assembles the full search tree, with one node per branch
// attempted by the driver.
type TreeRecorder struct {
	node *Node
}

// NewTreeRecorder returns a recorder positioned at a fresh root node.
func NewTreeRecorder() *TreeRecorder {
	return &TreeRecorder{node: &Node{Outcome: OutcomeOpen}}
}

// Root returns the root of the recorded tree.
func (t *TreeRecorder) Root() *Node {
	return t.node
}

// Record implements Recorder by appending to the current branch.
func (t *TreeRecorder) Record(reason Reason, remaining Snapshot) {
	t.node.Deductions = append(t.node.Deductions, Deduction{Reason: reason, Remaining: remaining})
}

// Fork implements Forker by opening a child node for the guess.
func (t *TreeRecorder) Fork(cell grid.Cell, digit digits.Digit) Recorder {
	child := &Node{
		Guess:   &Guess{Cell: refOf(cell), Digit: digit.Value()},
		Outcome: OutcomeOpen,
	}
	t.node.Children = append(t.node.Children, child)
	return &TreeRecorder{node: child}
}

// Resolve implements Forker.
func (t *TreeRecorder) Resolve(outcome Outcome) {
	t.node.Outcome = outcome
}
