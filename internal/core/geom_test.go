package core

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{2, 3, 4, 5}

	if !r.Contains(2, 3) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(6, 3) {
		t.Error("right edge is exclusive")
	}
	if r.Contains(2, 8) {
		t.Error("bottom edge is exclusive")
	}
}

func TestRectClip(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		w, h     int
		expected Rect
	}{
		{"inside", Rect{1, 1, 2, 2}, 10, 10, Rect{1, 1, 2, 2}},
		{"over right edge", Rect{8, 0, 5, 2}, 10, 10, Rect{8, 0, 2, 2}},
		{"over bottom edge", Rect{0, 9, 2, 5}, 10, 10, Rect{0, 9, 2, 1}},
		{"fully outside", Rect{20, 20, 5, 5}, 10, 10, Rect{10, 10, 0, 0}},
		{"zero canvas", Rect{0, 0, 5, 5}, 0, 0, Rect{0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Clip(tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("Clip() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectFromBoundsInverted(t *testing.T) {
	r := RectFromBounds(5, 5, 2, 2)
	if !r.Empty() {
		t.Errorf("inverted bounds should be empty, got %+v", r)
	}
}

func TestAreaFits(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		n             int
		expected      bool
	}{
		{"exact", 4, 3, 12, true},
		{"one over", 4, 3, 11, false},
		{"zero height", 1 << 40, 0, 0, true},
		{"zero width", 0, 7, 0, true},
		{"negative width", -1, 3, 100, false},
		{"negative height", 3, -1, 100, false},
		{"product wraps", 1 << 32, 1 << 32, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AreaFits(tc.width, tc.height, tc.n); got != tc.expected {
				t.Errorf("AreaFits(%d, %d, %d) = %v, expected %v", tc.width, tc.height, tc.n, got, tc.expected)
			}
		})
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{5, 3, 2},
		{3, 3, 0},
		{2, 3, 0},
		{0, 2, 0},
	}

	for _, tc := range tests {
		if got := SatSub(tc.a, tc.b); got != tc.expected {
			t.Errorf("SatSub(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}

func TestLuma(t *testing.T) {
	if got := Luma(PixelBackground); got != 255 {
		t.Errorf("Luma(background) = %d, expected 255", got)
	}
	if got := Luma(PixelForeground); got != 0 {
		t.Errorf("Luma(foreground) = %d, expected 0", got)
	}
}
