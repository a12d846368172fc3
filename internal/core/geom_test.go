package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", Box{0, 0, 10, 10}, Box{5, 5, 10, 10}, true},
		{"apart horizontally", Box{0, 0, 10, 10}, Box{15, 0, 10, 10}, false},
		{"apart vertically", Box{0, 0, 10, 10}, Box{0, 15, 10, 10}, false},
		{"touching edges", Box{0, 0, 10, 10}, Box{10, 0, 10, 10}, false},
		{"contained", Box{0, 0, 20, 20}, Box{5, 5, 2, 2}, true},
		{"fractional overlap", Box{0, 0, 10, 10}, Box{9.5, 9.5, 1, 1}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() is not symmetric")
			}
		})
	}
}

func TestBoxAt(t *testing.T) {
	b := BoxAt(80, 520, 32, 48)

	if b.X != 64 || b.Y != 496 || b.W != 32 || b.H != 48 {
		t.Errorf("BoxAt = %+v", b)
	}
	if cx, cy := b.Center(); cx != 80 || cy != 520 {
		t.Errorf("Center() = (%v, %v), expected (80, 520)", cx, cy)
	}
	if b.Right() != 96 || b.Bottom() != 544 {
		t.Errorf("Right/Bottom = %v/%v", b.Right(), b.Bottom())
	}
}

func TestViewportToCells(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Cols: 80, Rows: 24}

	tests := []struct {
		name string
		box  Box
		want Rect
	}{
		{"aligned", Box{0, 0, 100, 100}, Rect{0, 0, 10, 4}},
		{"partial cells round outwards", Box{15, 30, 10, 10}, Rect{1, 1, 2, 1}},
		{"tiny box still visible", Box{400, 300, 1, 1}, Rect{40, 12, 1, 1}},
		{"full world", Box{0, 0, 800, 600}, Rect{0, 0, 80, 24}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.ToCells(tc.box); got != tc.want {
				t.Errorf("ToCells(%+v) = %+v, expected %+v", tc.box, got, tc.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
