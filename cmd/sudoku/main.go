package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/solver"
	"sudoku-solver/internal/trace"
)

func main() {
	verboseFlag := flag.Bool("v", false, "print solver progress")
	traceFlag := flag.String("trace", "", "write the search tree as JSON to the given file")
	flag.Parse()

	solver.Verbose = *verboseFlag

	if isStdinTTY() {
		fmt.Println("Enter the puzzle as an 11-line grid:")
		fmt.Println("rows of digits 1-9 or spaces, '|' between blocks,")
		fmt.Println("and ---+---+--- separators on lines 4 and 8.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	board, err := puzzle.Read(os.Stdin)
	if err != nil {
		fatalError("reading puzzle", err)
	}

	var rec trace.Recorder = trace.NopRecorder{}
	var tree *trace.TreeRecorder
	if *traceFlag != "" {
		tree = trace.NewTreeRecorder()
		rec = tree
	}

	solution, solved := solver.SolveTraced(board, rec)

	if tree != nil {
		if err := writeTrace(*traceFlag, tree); err != nil {
			fatalError("writing trace", err)
		}
	}

	if !solved {
		color.HiRed("\nNo solution.")
		os.Exit(1)
	}

	color.HiWhite("\nSolution:")
	solution.Print()
}

func writeTrace(path string, tree *trace.TreeRecorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tree.Root())
}

func fatalError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
