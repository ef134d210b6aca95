package solver

import (
	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
	"sudoku-solver/internal/indexed"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/trace"
)

// A tracker holds the remaining possibilities for every cell together with
// derived per-zone counters.  The per-cell sets are the authoritative
// store; for each zone the counter for a digit always equals the number of
// zone cells whose set still contains that digit.  Every mutation goes
// through the reducer or specify, both of which keep all six views in step.
type tracker struct {
	cells   indexed.Map[grid.Cell, digits.Set]
	rows    indexed.Map[grid.Row, digits.Count]
	cols    indexed.Map[grid.Col, digits.Count]
	boxes   indexed.Map[grid.Box, digits.Count]
	boxRows indexed.Map[grid.BoxRow, digits.Count]
	boxCols indexed.Map[grid.BoxCol, digits.Count]
}

// newTracker lifts a board into a fresh tracker.  Pinned cells keep only
// their digit; every zone counter starts at the zone size and loses one of
// every other digit per pinned cell it contains.
func newTracker(b *puzzle.Board) *tracker {
	t := &tracker{
		cells:   indexed.NewMap[grid.Cell](grid.NumCells, digits.FullSet()),
		rows:    indexed.NewMap[grid.Row](grid.NumRows, digits.CountOf(grid.Size)),
		cols:    indexed.NewMap[grid.Col](grid.NumCols, digits.CountOf(grid.Size)),
		boxes:   indexed.NewMap[grid.Box](grid.NumBoxes, digits.CountOf(grid.Size)),
		boxRows: indexed.NewMap[grid.BoxRow](grid.NumBoxRows, digits.CountOf(grid.BoxSize)),
		boxCols: indexed.NewMap[grid.BoxCol](grid.NumBoxCols, digits.CountOf(grid.BoxSize)),
	}
	for _, c := range grid.AllCells() {
		d, ok := b.Digit(c)
		if !ok {
			continue
		}
		t.cells.Set(c, digits.Only(d))
		t.rows.Get(c.Row()).RemoveExcept(d)
		t.cols.Get(c.Col()).RemoveExcept(d)
		t.boxes.Get(c.Box()).RemoveExcept(d)
		t.boxRows.Get(c.BoxRow()).RemoveExcept(d)
		t.boxCols.Get(c.BoxCol()).RemoveExcept(d)
	}
	return t
}

// clone deep-copies all six views as a unit.
func (t *tracker) clone() *tracker {
	return &tracker{
		cells:   t.cells.Clone(),
		rows:    t.rows.Clone(),
		cols:    t.cols.Clone(),
		boxes:   t.boxes.Clone(),
		boxRows: t.boxRows.Clone(),
		boxCols: t.boxCols.Clone(),
	}
}

// knownUnsolveable reports whether the board has a detectable local
// contradiction: a cell with no remaining digits, or a row, column, or box
// that can no longer hold all nine digits.
func (t *tracker) knownUnsolveable() bool {
	for _, set := range t.cells.Values() {
		if set.IsEmpty() {
			return true
		}
	}
	for i := range t.rows.Values() {
		if t.rows.Values()[i].Avail().Len() < grid.Size {
			return true
		}
	}
	for i := range t.cols.Values() {
		if t.cols.Values()[i].Avail().Len() < grid.Size {
			return true
		}
	}
	for i := range t.boxes.Values() {
		if t.boxes.Values()[i].Avail().Len() < grid.Size {
			return true
		}
	}
	return false
}

// solved reports whether every row, column, and box holds exactly one of
// each digit.
func (t *tracker) solved() bool {
	return solvedZones(t.rows.Values()) &&
		solvedZones(t.cols.Values()) &&
		solvedZones(t.boxes.Values())
}

func solvedZones(counts []digits.Count) bool {
	for i := range counts {
		for _, d := range digits.All() {
			if counts[i].Get(d) != 1 {
				return false
			}
		}
	}
	return true
}

// board lowers the tracker back to a value grid, leaving blank any cell
// that is not yet singular.
func (t *tracker) board() puzzle.Board {
	var b puzzle.Board
	for _, c := range grid.AllCells() {
		if d, ok := t.cells.Get(c).Single(); ok {
			b.Set(c, uint8(d))
		}
	}
	return b
}

// snapshot copies the per-cell sets for the trace recorder.
func (t *tracker) snapshot() trace.Snapshot {
	var s trace.Snapshot
	copy(s[:], t.cells.Values())
	return s
}

// branchCell finds the first cell in flat-index order that still has more
// than one candidate.
func (t *tracker) branchCell() (grid.Cell, digits.Set, bool) {
	for _, c := range grid.AllCells() {
		if set := *t.cells.Get(c); set.Len() > 1 {
			return c, set, true
		}
	}
	return grid.Cell{}, digits.EmptySet(), false
}

// specify clones the tracker and directly fixes cell c to digit d in the
// clone, subtracting the discarded candidates from all five zone counters.
// avail must be the current candidate set of c.
func (t *tracker) specify(c grid.Cell, d digits.Digit, avail digits.Set) *tracker {
	child := t.clone()
	removed := avail.Without(d)
	child.cells.Set(c, digits.Only(d))
	child.rows.Get(c.Row()).SubSet(removed)
	child.cols.Get(c.Col()).SubSet(removed)
	child.boxes.Get(c.Box()).SubSet(removed)
	child.boxRows.Get(c.BoxRow()).SubSet(removed)
	child.boxCols.Get(c.BoxCol()).SubSet(removed)
	return child
}
