package puzzle

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"sudoku-solver/internal/grid"
)

var (
	borderColor = color.New(color.FgHiWhite)
	valueColor  = color.New(color.Bold, color.FgHiWhite)
)

// Lines renders the board in the eleven-line text form accepted by Parse.
func (b *Board) Lines() []string {
	lines := make([]string, 0, 11)
	for r := 0; r < grid.Size; r++ {
		if r == 3 || r == 6 {
			lines = append(lines, Separator)
		}
		var sb strings.Builder
		for c := 0; c < grid.Size; c++ {
			if c == 3 || c == 6 {
				sb.WriteByte('|')
			}
			v := b[r*grid.Size+c]
			if v == 0 {
				sb.WriteByte(' ')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String renders the eleven-line text form as a single string.
func (b *Board) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Print writes the board to stdout with highlighted grid lines.
func (b *Board) Print() {
	for _, line := range b.Lines() {
		if line == Separator {
			borderColor.Println(line)
			continue
		}
		for i := 0; i < len(line); i++ {
			switch ch := line[i]; ch {
			case '|':
				borderColor.Print("|")
			case ' ':
				fmt.Print(" ")
			default:
				valueColor.Printf("%c", ch)
			}
		}
		fmt.Println()
	}
}
