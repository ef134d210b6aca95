package digits

import "testing"

func TestCountAvail(t *testing.T) {
	cases := []struct {
		counts Count
		want   Set
	}{
		{Count{0, 1, 0, 3, 4, 5, 0, 0, 1}, 0b100111010},
		{Count{1, 9, 3, 8, 4, 1, 2, 5, 9}, FullSet()},
		{Count{}, EmptySet()},
	}
	for _, tc := range cases {
		if got := tc.counts.Avail(); got != tc.want {
			t.Errorf("Avail(%v) = %v, want %v", tc.counts, got, tc.want)
		}
	}
}

func TestCountRemove(t *testing.T) {
	c := CountOf(1)
	if n, ok := c.Remove(New(3)); !ok || n != 0 {
		t.Errorf("Remove(3) = %d, %v, want 0, true", n, ok)
	}
	if _, ok := c.Remove(New(3)); ok {
		t.Errorf("Remove(3) on a zero count reported a change")
	}
	if got := c.Get(New(3)); got != 0 {
		t.Errorf("count for 3 = %d, want 0", got)
	}
}

func TestCountRemoveExcept(t *testing.T) {
	c := CountOf(2)
	c.RemoveExcept(New(5))
	for _, d := range All() {
		want := uint8(1)
		if d == 5 {
			want = 2
		}
		if got := c.Get(d); got != want {
			t.Errorf("count for %v = %d, want %d", d, got, want)
		}
	}

	// Saturates at zero rather than wrapping.
	z := CountOf(0)
	z.RemoveExcept(New(1))
	for _, d := range All() {
		if got := z.Get(d); got != 0 {
			t.Errorf("count for %v = %d, want 0", d, got)
		}
	}
}

func TestCountAddOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on overflow")
		}
	}()
	c := CountOf(255)
	c.Add(New(1))
}

func TestCountSubSet(t *testing.T) {
	c := CountOf(3)
	c.SubSet(Only(New(1)).Union(Only(New(9))))
	if got := c.Get(New(1)); got != 2 {
		t.Errorf("count for 1 = %d, want 2", got)
	}
	if got := c.Get(New(9)); got != 2 {
		t.Errorf("count for 9 = %d, want 2", got)
	}
	if got := c.Get(New(5)); got != 3 {
		t.Errorf("count for 5 = %d, want 3", got)
	}
}

func TestCountElementwise(t *testing.T) {
	a := CountOf(2)
	a.AddAll(CountOf(3))
	for _, d := range All() {
		if got := a.Get(d); got != 5 {
			t.Errorf("count for %v = %d, want 5", d, got)
		}
	}

	a.SubAll(CountOf(9))
	for _, d := range All() {
		if got := a.Get(d); got != 0 {
			t.Errorf("count for %v = %d, want 0", d, got)
		}
	}
}
