package solver

import "github.com/fatih/color"

// Verbose enables progress output from the driver.  The solver's results
// are identical either way.
var Verbose bool

func printProgress(format string, a ...any) {
	if Verbose {
		color.Yellow(format, a...)
	}
}
