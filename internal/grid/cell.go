package grid

import "fmt"

// A Cell identifies one of the 81 positions on the board.
type Cell struct {
	row, col uint8
}

// NewCell constructs the cell at row r, column c.  Coordinates outside the
// board are a programmer error and panic.
func NewCell(r, c int) Cell {
	if r < 0 || r >= Size || c < 0 || c >= Size {
		panic(fmt.Sprintf("cell coordinates must be in range [0, 9), got (%d,%d)", r, c))
	}
	return Cell{row: uint8(r), col: uint8(c)}
}

// CellAt constructs the cell with the given flat index, where the index is
// row*9 + col.
func CellAt(i int) Cell {
	if i < 0 || i >= NumCells {
		panic(fmt.Sprintf("cell index must be in range [0, 81), got %d", i))
	}
	return Cell{row: uint8(i / Size), col: uint8(i % Size)}
}

// Index returns the flat index of the cell in row-major order.
func (c Cell) Index() int {
	return int(c.row)*Size + int(c.col)
}

// Row returns the row containing the cell.
func (c Cell) Row() Row {
	return Row(c.row)
}

// Col returns the column containing the cell.
func (c Cell) Col() Col {
	return Col(c.col)
}

// Box returns the box containing the cell.
func (c Cell) Box() Box {
	return Box{baseRow: sectorBase(c.row), baseCol: sectorBase(c.col)}
}

// BoxRow returns the box-row containing the cell.
func (c Cell) BoxRow() BoxRow {
	return BoxRow{row: c.row, baseCol: sectorBase(c.col)}
}

// BoxCol returns the box-column containing the cell.
func (c Cell) BoxCol() BoxCol {
	return BoxCol{baseRow: sectorBase(c.row), col: c.col}
}

// Neighbors returns the 20 other cells that share a row, column, or box with
// this cell.  The order is fixed: the rest of the row, then the rest of the
// column, then the four box cells that share neither.
func (c Cell) Neighbors() []Cell {
	ns := make([]Cell, 0, 20)
	for cc := uint8(0); cc < Size; cc++ {
		if cc != c.col {
			ns = append(ns, Cell{row: c.row, col: cc})
		}
	}
	for rr := uint8(0); rr < Size; rr++ {
		if rr != c.row {
			ns = append(ns, Cell{row: rr, col: c.col})
		}
	}
	br, bc := sectorBase(c.row), sectorBase(c.col)
	for rr := br; rr < br+BoxSize; rr++ {
		for cc := bc; cc < bc+BoxSize; cc++ {
			if rr != c.row && cc != c.col {
				ns = append(ns, Cell{row: rr, col: cc})
			}
		}
	}
	return ns
}

func (c Cell) String() string {
	return fmt.Sprintf("r%dc%d", c.row+1, c.col+1)
}
