package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"inside", Pt(15, 15), true},
		{"top-left corner", Pt(10, 10), true},
		{"last cell", Pt(29, 24), true},
		{"bottom-right edge (exclusive)", Pt(30, 25), false},
		{"outside left", Pt(5, 15), false},
		{"outside right", Pt(35, 15), false},
		{"outside top", Pt(15, 5), false},
		{"outside bottom", Pt(15, 30), false},
		{"negative coordinates", Pt(-1, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.p)
			if result != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	c := r.Center()
	if c.X != 15 || c.Y != 17 {
		t.Errorf("Center() = %v, expected (15, 17)", c)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 6, 24, 3)
	if r.X != 28 || r.Y != 6 || r.W != 24 || r.H != 3 {
		t.Errorf("CenteredRect(80, 6, 24, 3) = %+v", r)
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 4).Inset(1)
	if r != NewRect(1, 1, 8, 2) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if !tiny.Empty() {
		t.Errorf("Inset beyond size should be empty, got %+v", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}
