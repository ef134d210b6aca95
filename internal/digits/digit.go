package digits

import "fmt"

// A Digit is a Sudoku value in the range 1 to 9.
type Digit uint8

const (
	// Min is the smallest valid digit.
	Min Digit = 1
	// Max is the largest valid digit.
	Max Digit = 9

	// NumDigits is the number of distinct digits.
	NumDigits = 9
)

// New converts n to a Digit.  Values outside the range 1-9 are a programmer
// error and panic.
func New(n int) Digit {
	if n < int(Min) || n > int(Max) {
		panic(fmt.Sprintf("digit must be in range [1, 9], got %d", n))
	}
	return Digit(n)
}

// FromIndex converts a zero-based index back to a Digit.
func FromIndex(i int) Digit {
	if i < 0 || i >= NumDigits {
		panic(fmt.Sprintf("digit index must be in range [0, 9), got %d", i))
	}
	return Digit(i + 1)
}

// Index returns the zero-based index of the digit.
func (d Digit) Index() int {
	return int(d) - 1
}

// Value returns the digit as a plain int.
func (d Digit) Value() int {
	return int(d)
}

func (d Digit) String() string {
	return fmt.Sprintf("%d", int(d))
}

// All returns the digits 1 through 9 in ascending order.
func All() []Digit {
	ds := make([]Digit, 0, NumDigits)
	for d := Min; d <= Max; d++ {
		ds = append(ds, d)
	}
	return ds
}
