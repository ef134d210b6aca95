package puzzle

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sudoku-solver/internal/grid"
)

// Separator is the divider expected on lines 4 and 8 of the eleven-line
// text form.
const Separator = "---+---+---"

// Parse builds a board from the eleven-line text form: three blocks of
// three rows separated by "---+---+---", columns separated by '|', with
// digits 1-9 or a space in each cell.
func Parse(lines []string) (Board, error) {
	var b Board
	if len(lines) != 11 {
		return b, fmt.Errorf("expected 11 lines, got %d", len(lines))
	}
	if lines[3] != Separator || lines[7] != Separator {
		return b, fmt.Errorf("lines 4 and 8 must be %q", Separator)
	}

	r := 0
	for i, line := range lines {
		if i == 3 || i == 7 {
			continue
		}
		if err := parseRow(&b, r, line); err != nil {
			return b, fmt.Errorf("line %d: %w", i+1, err)
		}
		r++
	}
	return b, nil
}

func parseRow(b *Board, row int, line string) error {
	if len(line) != 11 {
		return fmt.Errorf("expected 11 characters, got %d", len(line))
	}
	if line[3] != '|' || line[7] != '|' {
		return fmt.Errorf("columns 4 and 8 must be '|'")
	}
	col := 0
	for i := 0; i < len(line); i++ {
		if i == 3 || i == 7 {
			continue
		}
		ch := line[i]
		switch {
		case ch >= '1' && ch <= '9':
			b[row*grid.Size+col] = ch - '0'
		case ch == ' ':
			b[row*grid.Size+col] = 0
		default:
			return fmt.Errorf("unsupported cell character %q", ch)
		}
		col++
	}
	return nil
}

// ParseString builds a board from a flat textual form.  Runes 1-9 pin a
// digit, '0' and '.' mark blanks, and everything else is ignored, so both
// bare 81-character strings and whitespace-formatted grids are accepted.
// There must be exactly 81 cell runes.
func ParseString(s string) (Board, error) {
	var b Board
	i := 0
	for _, r := range s {
		var v uint8
		switch {
		case r >= '1' && r <= '9':
			v = uint8(r - '0')
		case r == '0' || r == '.':
			v = 0
		default:
			continue
		}
		if i >= grid.NumCells {
			return b, fmt.Errorf("got more than 81 cells in board")
		}
		b[i] = v
		i++
	}
	if i != grid.NumCells {
		return b, fmt.Errorf("got only %d cells in board, want 81", i)
	}
	return b, nil
}

// Read parses the eleven-line text form from r, ignoring blank leading and
// trailing lines.
func Read(r io.Reader) (Board, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" && (len(lines) == 0 || len(lines) >= 11) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Board{}, fmt.Errorf("reading board: %w", err)
	}
	return Parse(lines)
}
