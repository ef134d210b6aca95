package grid

import (
	"testing"

	"golang.org/x/exp/slices"
)

func TestCellIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumCells; i++ {
		c := CellAt(i)
		if c.Index() != i {
			t.Errorf("CellAt(%d).Index() = %d", i, c.Index())
		}
		if NewCell(c.Row().Index(), c.Col().Index()) != c {
			t.Errorf("cell %v does not round trip through row/col", c)
		}
	}
}

func TestCellNeighbors(t *testing.T) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			var expected []Cell
			for cc := 0; cc < Size; cc++ {
				if cc != c {
					expected = append(expected, NewCell(r, cc))
				}
			}
			for rr := 0; rr < Size; rr++ {
				if rr != r {
					expected = append(expected, NewCell(rr, c))
				}
			}
			for rr := r - r%3; rr < r-r%3+3; rr++ {
				for cc := c - c%3; cc < c-c%3+3; cc++ {
					if rr != r && cc != c {
						expected = append(expected, NewCell(rr, cc))
					}
				}
			}
			got := NewCell(r, c).Neighbors()
			if len(got) != 20 {
				t.Fatalf("cell (%d,%d) has %d neighbors, want 20", r, c, len(got))
			}
			if !slices.Equal(got, expected) {
				t.Errorf("cell (%d,%d) neighbors = %v\nwant %v", r, c, got, expected)
			}
		}
	}
}

func TestZoneCells(t *testing.T) {
	for _, row := range AllRows() {
		cells := row.Cells()
		if len(cells) != Size {
			t.Fatalf("%v has %d cells", row, len(cells))
		}
		for _, c := range cells {
			if !row.Contains(c) {
				t.Errorf("%v does not contain its own cell %v", row, c)
			}
		}
	}
	for _, col := range AllCols() {
		for _, c := range col.Cells() {
			if !col.Contains(c) {
				t.Errorf("%v does not contain its own cell %v", col, c)
			}
		}
	}
	for _, box := range AllBoxes() {
		cells := box.Cells()
		if len(cells) != Size {
			t.Fatalf("%v has %d cells", box, len(cells))
		}
		for _, c := range cells {
			if !box.Contains(c) {
				t.Errorf("%v does not contain its own cell %v", box, c)
			}
			if c.Box() != box {
				t.Errorf("cell %v reports box %v, want %v", c, c.Box(), box)
			}
		}
	}
}

func TestBoxIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumBoxes; i++ {
		if BoxAt(i).Index() != i {
			t.Errorf("BoxAt(%d).Index() = %d", i, BoxAt(i).Index())
		}
	}
}

func TestBoxRowIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumBoxRows; i++ {
		l := BoxRowAt(i)
		if l.Index() != i {
			t.Errorf("BoxRowAt(%d).Index() = %d", i, l.Index())
		}
		if len(l.Cells()) != BoxSize {
			t.Errorf("%v has %d cells", l, len(l.Cells()))
		}
		for _, c := range l.Cells() {
			if c.BoxRow() != l {
				t.Errorf("cell %v reports box-row %v, want %v", c, c.BoxRow(), l)
			}
			if !l.Contains(c) {
				t.Errorf("%v does not contain its own cell %v", l, c)
			}
		}
	}
}

func TestBoxColIndexRoundTrip(t *testing.T) {
	for i := 0; i < NumBoxCols; i++ {
		l := BoxColAt(i)
		if l.Index() != i {
			t.Errorf("BoxColAt(%d).Index() = %d", i, l.Index())
		}
		for _, c := range l.Cells() {
			if c.BoxCol() != l {
				t.Errorf("cell %v reports box-col %v, want %v", c, c.BoxCol(), l)
			}
		}
	}
}

func TestBoxLineConstructors(t *testing.T) {
	if got := NewBoxRow(4, 3); got != BoxRowAt(13) {
		t.Errorf("NewBoxRow(4, 3) = %v", got)
	}
	if got := NewBoxCol(6, 4); got != NewCell(6, 4).BoxCol() {
		t.Errorf("NewBoxCol(6, 4) = %v", got)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for an unaligned base column")
		}
	}()
	NewBoxRow(0, 2)
}

func TestBoxRowNeighbors(t *testing.T) {
	for _, l := range AllBoxRows() {
		line := l.LineNeighbors()
		for _, n := range line {
			if n == l {
				t.Errorf("%v lists itself as a line neighbor", l)
			}
			if n.Row() != l.Row() {
				t.Errorf("line neighbor %v of %v is in a different row", n, l)
			}
			if n.Box() == l.Box() {
				t.Errorf("line neighbor %v of %v shares its box", n, l)
			}
		}
		box := l.BoxNeighbors()
		for _, n := range box {
			if n.Box() != l.Box() {
				t.Errorf("box neighbor %v of %v is in a different box", n, l)
			}
			if n.Row() == l.Row() {
				t.Errorf("box neighbor %v of %v shares its row", n, l)
			}
		}
	}
}

func TestBoxColNeighbors(t *testing.T) {
	for _, l := range AllBoxCols() {
		for _, n := range l.LineNeighbors() {
			if n.Col() != l.Col() || n.Box() == l.Box() {
				t.Errorf("bad line neighbor %v for %v", n, l)
			}
		}
		for _, n := range l.BoxNeighbors() {
			if n.Box() != l.Box() || n.Col() == l.Col() {
				t.Errorf("bad box neighbor %v for %v", n, l)
			}
		}
	}
}

func TestRowBoxRowsPartition(t *testing.T) {
	for _, row := range AllRows() {
		seen := make(map[Cell]bool)
		for _, l := range row.BoxRows() {
			if l.Row() != row {
				t.Errorf("box-row %v not in row %v", l, row)
			}
			for _, c := range l.Cells() {
				seen[c] = true
			}
		}
		if len(seen) != Size {
			t.Errorf("box-rows of %v cover %d cells, want 9", row, len(seen))
		}
	}
}
