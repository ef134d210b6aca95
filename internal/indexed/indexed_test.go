package indexed

import "testing"

type key int

func (k key) Index() int { return int(k) }

func TestMapFill(t *testing.T) {
	m := NewMap[key](5, "x")
	if m.Len() != 5 {
		t.Fatalf("Len = %d, want 5", m.Len())
	}
	for i := 0; i < 5; i++ {
		if *m.Get(key(i)) != "x" {
			t.Errorf("entry %d = %q, want x", i, *m.Get(key(i)))
		}
	}
}

func TestMapGetSet(t *testing.T) {
	m := NewMap[key](3, 0)
	m.Set(key(1), 7)
	*m.Get(key(2)) = 9
	want := []int{0, 7, 9}
	for i, v := range m.Values() {
		if v != want[i] {
			t.Errorf("entry %d = %d, want %d", i, v, want[i])
		}
	}
}

func TestMapSplitAt(t *testing.T) {
	m := NewMap[key](4, 0)
	for i := 0; i < 4; i++ {
		m.Set(key(i), i)
	}
	lower, upper := m.SplitAt(key(2))
	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("split sizes %d/%d, want 2/2", len(lower), len(upper))
	}
	if lower[1] != 1 || upper[0] != 2 {
		t.Errorf("split contents wrong: %v %v", lower, upper)
	}
}

func TestEnumerate(t *testing.T) {
	m := NewMap[key](3, 0)
	for i := 0; i < 3; i++ {
		m.Set(key(i), i*10)
	}
	var keys []key
	var vals []int
	Enumerate(&m, func(i int) key { return key(i) }, func(k key, v int) {
		keys = append(keys, k)
		vals = append(vals, v)
	})
	for i := 0; i < 3; i++ {
		if keys[i] != key(i) || vals[i] != i*10 {
			t.Errorf("entry %d = (%v, %d)", i, keys[i], vals[i])
		}
	}
}

func TestMapClone(t *testing.T) {
	m := NewMap[key](2, 1)
	c := m.Clone()
	c.Set(key(0), 5)
	if *m.Get(key(0)) != 1 {
		t.Errorf("clone mutation leaked into original")
	}
	if *c.Get(key(0)) != 5 || *c.Get(key(1)) != 1 {
		t.Errorf("clone contents wrong: %v", c.Values())
	}
}
