// Package physics holds the shared ball/surface types and the collision
// capability the chamber consumes. The types use float32 fields only so their
// in-memory layout matches what a host reads out of the exposed ball buffer.
package physics

import "math"

// Pos2 is a point in normalized chamber coordinates.
type Pos2 struct {
	X, Y float32
}

// Vec2 is a displacement or velocity in normalized chamber coordinates.
type Vec2 struct {
	X, Y float32
}

// Surface is a line segment from A to B.
// The normal points up if A is left of B, down if B is left of A.
type Surface struct {
	A, B Pos2
}

// Ball is a single chamber ball. 20 bytes: position, radius, velocity.
type Ball struct {
	Pos      Pos2
	R        float32
	Velocity Vec2
}

// BallSize is the size in bytes of one Ball record in the ball buffer.
const BallSize = 20

// Floor is the only surface of the chamber: (0,0) to (1,0).
var Floor = Surface{
	A: Pos2{X: 0, Y: 0},
	B: Pos2{X: 1, Y: 0},
}

// Add returns p moved by v.
func (p Pos2) Add(v Vec2) Pos2 {
	return Pos2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from o to p.
func (p Pos2) Sub(o Pos2) Vec2 {
	return Vec2{X: p.X - o.X, Y: p.Y - o.Y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul scales v by k.
func (v Vec2) Mul(k float32) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Length2 returns the squared length of v.
func (v Vec2) Length2() float32 {
	return v.Dot(v)
}

// Length returns the length of v.
func (v Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v.Length2())))
}

// Normalized returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalized() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Mul(1 / l)
}

// Advance moves the ball along its velocity for delta time units.
func (b *Ball) Advance(delta float32) {
	b.Pos = b.Pos.Add(b.Velocity.Mul(delta))
}

// ApplyGravity accelerates the ball along y by g for delta time units.
func ApplyGravity(b *Ball, g, delta float32) {
	b.Velocity.Y += g * delta
}
