package digits

import "fmt"

// A Count holds a small counter for each digit.  It tracks how many copies
// of each digit remain available across the cells of a zone.  Count is a
// plain value and copies freely.
type Count [NumDigits]uint8

// CountOf returns a Count with every digit set to n.
func CountOf(n uint8) Count {
	var c Count
	for i := range c {
		c[i] = n
	}
	return c
}

// Get returns the count for d.
func (c *Count) Get(d Digit) uint8 {
	return c[d.Index()]
}

// Add increments the count for d and returns the updated count.  Overflow is
// a programmer error and panics.
func (c *Count) Add(d Digit) uint8 {
	if c[d.Index()] == ^uint8(0) {
		panic(fmt.Sprintf("overflowed counter for digit %d", d))
	}
	c[d.Index()]++
	return c[d.Index()]
}

// Remove decrements the count for d if it is nonzero and returns the updated
// count.  If the count was already zero it is left alone and the second
// result is false.
func (c *Count) Remove(d Digit) (uint8, bool) {
	if c[d.Index()] == 0 {
		return 0, false
	}
	c[d.Index()]--
	return c[d.Index()], true
}

// RemoveExcept decrements the count of every digit other than d, saturating
// at zero.
func (c *Count) RemoveExcept(d Digit) {
	for i := range c {
		if i != d.Index() && c[i] > 0 {
			c[i]--
		}
	}
}

// Avail returns the set of digits whose count is greater than zero.
func (c *Count) Avail() Set {
	s := EmptySet()
	for i, n := range c {
		if n > 0 {
			s.Add(FromIndex(i))
		}
	}
	return s
}

// AddAll adds the counts of o elementwise.  Overflow is a programmer error
// and panics.
func (c *Count) AddAll(o Count) {
	for i := range c {
		sum := uint16(c[i]) + uint16(o[i])
		if sum > uint16(^uint8(0)) {
			panic(fmt.Sprintf("overflowed counter for digit %d", i+1))
		}
		c[i] = uint8(sum)
	}
}

// SubAll subtracts the counts of o elementwise, saturating at zero.
func (c *Count) SubAll(o Count) {
	for i := range c {
		if c[i] < o[i] {
			c[i] = 0
		} else {
			c[i] -= o[i]
		}
	}
}

// SubSet decrements the count of each digit present in s once, saturating at
// zero.
func (c *Count) SubSet(s Set) {
	for it := s.Iter(); ; {
		d, ok := it.Next()
		if !ok {
			return
		}
		c.Remove(d)
	}
}
