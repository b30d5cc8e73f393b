package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 30, false},
		{9, 15, false},
		{15, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectCentered(t *testing.T) {
	got := NewRect(0, 2, 80, 20).Centered(20, 4)
	if got != NewRect(30, 10, 20, 4) {
		t.Errorf("Centered = %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}

	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF = %v, expected 1", got)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{WorldW: 800, WorldH: 600, Area: NewRect(0, 2, 80, 20)}

	tests := []struct {
		wx, wy float64
		cx, cy int
	}{
		{0, 0, 0, 2},
		{799, 599, 79, 21},
		{405, 45, 40, 3},
		{-50, 0, -5, 2},
	}
	for _, tt := range tests {
		cx, cy := v.ToCell(tt.wx, tt.wy)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tt.wx, tt.wy, cx, cy, tt.cx, tt.cy)
		}
	}

	wx, wy := v.ToWorld(40, 3)
	if wx != 405 || wy != 45 {
		t.Errorf("ToWorld(40, 3) = (%v, %v), expected (405, 45)", wx, wy)
	}
	if cx, cy := v.ToCell(wx, wy); cx != 40 || cy != 3 {
		t.Errorf("round trip = (%d, %d)", cx, cy)
	}

	sx, sy := v.CellSize()
	if sx != 10 || sy != 30 {
		t.Errorf("CellSize = (%v, %v)", sx, sy)
	}
}
