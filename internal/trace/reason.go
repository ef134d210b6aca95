package trace

import (
	"encoding/json"

	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
)

// A Reason explains why a deduction fired.  Each concrete reason serialises
// as an object with a "reason" tag naming its kind; digit sets serialise as
// ascending arrays of digits.
type Reason interface {
	// Kind returns the serialisation tag for this reason.
	Kind() string
}

// CellRef is the JSON form of a cell position.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func refOf(c grid.Cell) CellRef {
	return CellRef{Row: c.Row().Index(), Col: c.Col().Index()}
}

// InitialState is recorded once before the reducer drains its queue.
type InitialState struct{}

func (InitialState) Kind() string { return "initial_state" }

// CellNeighbors records that a cell held a single digit, which was then
// eliminated from its 20 neighbours.
type CellNeighbors struct {
	Cell  grid.Cell
	Digit digits.Digit
}

func (CellNeighbors) Kind() string { return "cell_neighbors" }

// UniqueInRow records that each digit in Vals had a single remaining home
// in the row, and the rest of that home cell was eliminated.
type UniqueInRow struct {
	Row  grid.Row
	Vals digits.Set
}

func (UniqueInRow) Kind() string { return "unique_in_row" }

// UniqueInCol is the column form of UniqueInRow.
type UniqueInCol struct {
	Col  grid.Col
	Vals digits.Set
}

func (UniqueInCol) Kind() string { return "unique_in_col" }

// UniqueInBox is the box form of UniqueInRow.
type UniqueInBox struct {
	Box  grid.Box
	Vals digits.Set
}

func (UniqueInBox) Kind() string { return "unique_in_box" }

// LineSizeMatch records that a box-line was down to exactly three digits,
// which were eliminated from the rest of its row or column and box.
type LineSizeMatch struct {
	Line string
	Vals digits.Set
}

func (LineSizeMatch) Kind() string { return "line_size_match" }

// LineOnlyInLine records that the digits in Vals were confined within their
// row or column to one box-line, and were eliminated from the rest of the
// box.
type LineOnlyInLine struct {
	Line string
	Vals digits.Set
}

func (LineOnlyInLine) Kind() string { return "line_only_in_line" }

// LineOnlyInBox records that the digits in Vals were confined within their
// box to one box-line, and were eliminated from the rest of the row or
// column.
type LineOnlyInBox struct {
	Line string
	Vals digits.Set
}

func (LineOnlyInBox) Kind() string { return "line_only_in_box" }

// Unsolveable records the contradiction that collapsed the branch.
type Unsolveable struct {
	// Why is one of "empty_cell", "zone_missing", "line_too_few" or
	// "values_must_share".
	Why   string
	Cell  *grid.Cell
	Zone  string
	Digit digits.Digit
	Vals  digits.Set
}

func (Unsolveable) Kind() string { return "unsolveable" }

func tagged(r Reason, fields map[string]any) ([]byte, error) {
	obj := map[string]any{"reason": r.Kind()}
	for k, v := range fields {
		obj[k] = v
	}
	return json.Marshal(obj)
}

func (r InitialState) MarshalJSON() ([]byte, error) {
	return tagged(r, nil)
}

func (r CellNeighbors) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"cell": refOf(r.Cell), "digit": r.Digit.Value()})
}

func (r UniqueInRow) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"row": r.Row.Index(), "vals": r.Vals})
}

func (r UniqueInCol) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"col": r.Col.Index(), "vals": r.Vals})
}

func (r UniqueInBox) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"box": r.Box.Index(), "vals": r.Vals})
}

func (r LineSizeMatch) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"line": r.Line, "vals": r.Vals})
}

func (r LineOnlyInLine) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"line": r.Line, "vals": r.Vals})
}

func (r LineOnlyInBox) MarshalJSON() ([]byte, error) {
	return tagged(r, map[string]any{"line": r.Line, "vals": r.Vals})
}

func (r Unsolveable) MarshalJSON() ([]byte, error) {
	fields := map[string]any{"why": r.Why}
	if r.Cell != nil {
		fields["cell"] = refOf(*r.Cell)
	}
	if r.Zone != "" {
		fields["zone"] = r.Zone
	}
	if r.Digit != 0 {
		fields["digit"] = r.Digit.Value()
	}
	if !r.Vals.IsEmpty() {
		fields["vals"] = r.Vals
	}
	return tagged(r, fields)
}
