package digits

import (
	"encoding/json"
	"math/bits"
	"strings"
)

// A Set is a set of digits represented as a nine-bit mask.  Bit i holds
// membership of digit i+1; bits above 9 are always zero.  Set is a plain
// value and copies freely.
type Set uint16

const fullMask Set = 0x1ff

// FullSet returns the set containing every digit.
func FullSet() Set {
	return fullMask
}

// EmptySet returns the set containing no digits.
func EmptySet() Set {
	return 0
}

// Only returns the set containing just the given digit.
func Only(d Digit) Set {
	return 1 << d.Index()
}

// Contains reports whether d is in the set.
func (s Set) Contains(d Digit) bool {
	return s&Only(d) != 0
}

// Add inserts d into the set.  Returns true if d was not already present.
func (s *Set) Add(d Digit) bool {
	added := !s.Contains(d)
	*s |= Only(d)
	return added
}

// Remove deletes d from the set.  Returns true if d was present.
func (s *Set) Remove(d Digit) bool {
	had := s.Contains(d)
	*s &^= Only(d)
	return had
}

// Len returns the number of digits in the set.
func (s Set) Len() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether the set has no digits.
func (s Set) IsEmpty() bool {
	return s == 0
}

// IsSingle reports whether the set has exactly one digit.
func (s Set) IsSingle() bool {
	return s.Len() == 1
}

// Single returns the sole member of the set.  The second result is false
// unless the set has exactly one digit.
func (s Set) Single() (Digit, bool) {
	if !s.IsSingle() {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s)) + 1), true
}

// Retain removes every digit for which keep returns false.  Each digit is
// visited once.
func (s *Set) Retain(keep func(Digit) bool) {
	for it := s.Iter(); ; {
		d, ok := it.Next()
		if !ok {
			break
		}
		if !keep(d) {
			*s &^= Only(d)
		}
	}
}

// Complement returns the set of digits not in s.
func (s Set) Complement() Set {
	return ^s & fullMask
}

// Union returns the set of digits in either s or o.
func (s Set) Union(o Set) Set {
	return s | o
}

// Intersect returns the set of digits in both s and o.
func (s Set) Intersect(o Set) Set {
	return s & o
}

// Diff returns the set of digits in s but not in o.
func (s Set) Diff(o Set) Set {
	return s &^ o
}

// Without returns s with the single digit d removed.
func (s Set) Without(d Digit) Set {
	return s &^ Only(d)
}

// Digits collects the members of the set in ascending order.
func (s Set) Digits() []Digit {
	ds := make([]Digit, 0, s.Len())
	for it := s.Iter(); ; {
		d, ok := it.Next()
		if !ok {
			return ds
		}
		ds = append(ds, d)
	}
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, d := range s.Digits() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(byte('0' + d))
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON encodes the set as an ascending array of digits.
func (s Set) MarshalJSON() ([]byte, error) {
	ds := s.Digits()
	ns := make([]int, len(ds))
	for i, d := range ds {
		ns[i] = d.Value()
	}
	return json.Marshal(ns)
}

// UnmarshalJSON decodes an array of digits into the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var ns []int
	if err := json.Unmarshal(data, &ns); err != nil {
		return err
	}
	set := EmptySet()
	for _, n := range ns {
		set.Add(New(n))
	}
	*s = set
	return nil
}

// Iter returns a digit-ordered iterator over the set.  The iterator can be
// consumed from either end and its Len is always exact for the remaining
// window.
func (s Set) Iter() Iter {
	return Iter{set: s, lo: 0, hi: NumDigits}
}

// An Iter walks the members of a Set in digit order.  The zero value is an
// exhausted iterator.
type Iter struct {
	set    Set
	lo, hi int
}

// Next returns the smallest unvisited member, or false when the iterator is
// exhausted.  Once exhausted it stays exhausted.
func (it *Iter) Next() (Digit, bool) {
	for it.lo < it.hi {
		d := FromIndex(it.lo)
		it.lo++
		if it.set.Contains(d) {
			return d, true
		}
	}
	return 0, false
}

// NextBack returns the largest unvisited member, or false when the iterator
// is exhausted.
func (it *Iter) NextBack() (Digit, bool) {
	for it.lo < it.hi {
		it.hi--
		d := FromIndex(it.hi)
		if it.set.Contains(d) {
			return d, true
		}
	}
	return 0, false
}

// Len returns the exact number of members not yet yielded from either end.
func (it *Iter) Len() int {
	lowMask := Set(1<<it.lo) - 1
	highMask := Set(1<<it.hi) - 1
	return bits.OnesCount16(uint16(it.set & highMask &^ lowMask))
}
