package trace

import (
	"encoding/json"
	"strings"
	"testing"

	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
)

func TestReasonTags(t *testing.T) {
	cell := grid.NewCell(2, 4)
	cases := []struct {
		reason Reason
		tag    string
	}{
		{InitialState{}, "initial_state"},
		{CellNeighbors{Cell: cell, Digit: digits.New(5)}, "cell_neighbors"},
		{UniqueInRow{Row: grid.NewRow(3), Vals: digits.Only(digits.New(2))}, "unique_in_row"},
		{UniqueInCol{Col: grid.NewCol(7), Vals: digits.Only(digits.New(8))}, "unique_in_col"},
		{UniqueInBox{Box: grid.NewBox(3, 6), Vals: digits.Only(digits.New(1))}, "unique_in_box"},
		{LineSizeMatch{Line: "r3b1", Vals: digits.FullSet()}, "line_size_match"},
		{LineOnlyInLine{Line: "r3b1", Vals: digits.Only(digits.New(4))}, "line_only_in_line"},
		{LineOnlyInBox{Line: "c2b4", Vals: digits.Only(digits.New(9))}, "line_only_in_box"},
		{Unsolveable{Why: "empty_cell", Cell: &cell}, "unsolveable"},
	}
	for _, tc := range cases {
		data, err := json.Marshal(tc.reason)
		if err != nil {
			t.Fatalf("%T: %v", tc.reason, err)
		}
		var obj map[string]any
		if err := json.Unmarshal(data, &obj); err != nil {
			t.Fatalf("%T: %v", tc.reason, err)
		}
		if obj["reason"] != tc.tag {
			t.Errorf("%T serialised with tag %v, want %s", tc.reason, obj["reason"], tc.tag)
		}
	}
}

func TestReasonDigitSetsAsArrays(t *testing.T) {
	r := UniqueInRow{Row: grid.NewRow(0), Vals: digits.Only(digits.New(3)).Union(digits.Only(digits.New(6)))}
	data, err := json.Marshal(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"vals":[3,6]`) {
		t.Errorf("digit set not serialised as an array: %s", data)
	}
}

func TestSnapshotBoard(t *testing.T) {
	var s Snapshot
	for i := range s {
		s[i] = digits.FullSet()
	}
	s[13] = digits.Only(digits.New(7))

	b := s.Board()
	for i, v := range b {
		want := uint8(0)
		if i == 13 {
			want = 7
		}
		if v != want {
			t.Errorf("board[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestTreeRecorderShape(t *testing.T) {
	rec := NewTreeRecorder()
	rec.Record(InitialState{}, Snapshot{})

	childRec := rec.Fork(grid.NewCell(0, 0), digits.New(4)).(*TreeRecorder)
	childRec.Record(InitialState{}, Snapshot{})
	childRec.Resolve(OutcomeSolved)

	root := rec.Root()
	if len(root.Deductions) != 1 {
		t.Fatalf("root has %d deductions, want 1", len(root.Deductions))
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}
	child := root.Children[0]
	if child.Guess == nil || child.Guess.Digit != 4 {
		t.Errorf("child guess = %+v", child.Guess)
	}
	if child.Outcome != OutcomeSolved {
		t.Errorf("child outcome = %q", child.Outcome)
	}
	if root.Outcome != OutcomeOpen {
		t.Errorf("root outcome = %q", root.Outcome)
	}
}
