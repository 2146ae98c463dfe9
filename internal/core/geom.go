// Package core provides fundamental types and utilities shared by the chamber
// and its hosts. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation pure and testable.
package core

// Rect represents an axis-aligned pixel region, half-open on the right and bottom.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// RectFromBounds builds a rectangle from [x0, x1) x [y0, y1).
// Inverted bounds produce an empty rectangle.
func RectFromBounds(x0, y0, x1, y1 int) Rect {
	return Rect{X: x0, Y: y0, W: Max(x1-x0, 0), H: Max(y1-y0, 0)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clip returns the part of r that lies inside [0, w) x [0, h).
func (r Rect) Clip(w, h int) Rect {
	return RectFromBounds(
		Clamp(r.X, 0, w), Clamp(r.Y, 0, h),
		Clamp(r.Right(), 0, w), Clamp(r.Bottom(), 0, h),
	)
}

// AreaFits reports whether a width x height region fits in n cells.
// Negative sizes never fit. The product is never formed, so huge sizes
// cannot wrap around.
func AreaFits(width, height, n int) bool {
	if width < 0 || height < 0 {
		return false
	}
	return height == 0 || width <= n/height
}

// SatSub returns a-b, or 0 if that would go below zero.
func SatSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
