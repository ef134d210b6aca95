package puzzle

import (
	"fmt"

	"sudoku-solver/internal/digits"
	"sudoku-solver/internal/grid"
)

// A Board is a 9x9 grid of values in row-major order.  Each entry is either
// a digit 1-9 or zero for a blank cell.  Board is a plain value and copies
// freely.
type Board [grid.NumCells]uint8

// At returns the value at the given cell, zero if blank.
func (b *Board) At(c grid.Cell) uint8 {
	return b[c.Index()]
}

// Set places v at the given cell.  A value outside 0-9 is a programmer
// error and panics.
func (b *Board) Set(c grid.Cell, v uint8) {
	if v > uint8(digits.Max) {
		panic(fmt.Sprintf("board value must be in range [0, 9], got %d", v))
	}
	b[c.Index()] = v
}

// Digit returns the digit pinned at the given cell, or false if the cell is
// blank.
func (b *Board) Digit(c grid.Cell) (digits.Digit, bool) {
	v := b[c.Index()]
	if v == 0 {
		return 0, false
	}
	return digits.Digit(v), true
}

// Clear blanks the given cell.
func (b *Board) Clear(c grid.Cell) {
	b[c.Index()] = 0
}

// NumGivens counts the filled cells.
func (b *Board) NumGivens() int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// Grid returns the board as a 9x9 slice of rows, with zero for blanks.
// This is the shape exchanged over the JSON facade.
func (b *Board) Grid() [][]int {
	rows := make([][]int, grid.Size)
	for r := range rows {
		row := make([]int, grid.Size)
		for c := range row {
			row[c] = int(b[r*grid.Size+c])
		}
		rows[r] = row
	}
	return rows
}

// FromGrid builds a board from a 9x9 slice of rows.  Entries must be 0-9
// and the shape must be exactly 9x9.
func FromGrid(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != grid.Size {
		return b, fmt.Errorf("expected 9 rows, got %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != grid.Size {
			return b, fmt.Errorf("expected 9 columns, got %d on row %d", len(row), r)
		}
		for c, v := range row {
			if v < 0 || v > int(digits.Max) {
				return b, fmt.Errorf("values must be in range [0, 9], got %d on row %d column %d", v, r, c)
			}
			b[r*grid.Size+c] = uint8(v)
		}
	}
	return b, nil
}
