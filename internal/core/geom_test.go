package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 10, 10), NewBox(5, 5, 10, 10), true},
		{"apart horizontally", NewBox(0, 0, 10, 10), NewBox(15, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 15, 10, 10), false},
		{"touching right edge", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"touching bottom edge", NewBox(0, 0, 10, 10), NewBox(0, 10, 10, 10), false},
		{"contained", NewBox(0, 0, 20, 20), NewBox(5, 5, 5, 5), true},
		{"sub-unit overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"right edge exclusive", 30, 15, false},
		{"bottom edge exclusive", 15, 25, false},
		{"outside left", 9.99, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 16)

	if b.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", b.Bottom())
	}
	if b.CenterX() != 15 || b.CenterY() != 18 {
		t.Errorf("center = (%v, %v), expected (15, 18)", b.CenterX(), b.CenterY())
	}
	if !b.OverlapsX(NewBox(24, 100, 5, 5)) {
		t.Error("OverlapsX should ignore the vertical axis")
	}
}

func TestRectIntersectsAndContains(t *testing.T) {
	r := NewRect(2, 2, 4, 3)

	if !r.Intersects(NewRect(5, 4, 3, 3)) {
		t.Error("rects sharing cell (5,4) should intersect")
	}
	if r.Intersects(NewRect(6, 2, 3, 3)) {
		t.Error("adjacent rects should not intersect")
	}
	if !r.Contains(2, 2) || r.Contains(6, 2) {
		t.Error("Contains should include the top-left cell and exclude the right edge")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-0.5, 0, 898); got != 0 {
		t.Errorf("ClampF below range = %v, expected 0", got)
	}
	if got := ClampF(900, 0, 898); got != 898 {
		t.Errorf("ClampF above range = %v, expected 898", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned wrong value")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong value")
	}
}
