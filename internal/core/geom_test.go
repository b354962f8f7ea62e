package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},   // top-left corner
		{5, 7, true},   // bottom-right inside
		{6, 3, false},  // right edge (exclusive)
		{2, 8, false},  // bottom edge (exclusive)
		{1, 3, false},  // left of rect
		{2, 2, false},  // above rect
		{4, 5, true},   // middle
		{-1, -1, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(1, 2, 10, 5)

	if r.Right() != 11 {
		t.Errorf("Right() = %d, want 11", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, want 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 6 || cy != 4 {
		t.Errorf("Center() = (%d, %d), want (6, 4)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.5, 0.0, 1.0); got != 0.5 {
		t.Errorf("ClampF(0.5, 0, 1) = %f, want 0.5", got)
	}
	if got := ClampF(-0.5, 0.0, 1.0); got != 0.0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, want 0.0", got)
	}
	if got := ClampF(1.5, 0.0, 1.0); got != 1.0 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, want 1.0", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs failed")
	}
}
