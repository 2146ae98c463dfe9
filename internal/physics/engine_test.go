package physics

import (
	"math"
	"testing"
	"unsafe"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestBallLayout(t *testing.T) {
	if got := unsafe.Sizeof(Ball{}); got != BallSize {
		t.Fatalf("Sizeof(Ball) = %d, expected %d", got, BallSize)
	}
	var b Ball
	if off := unsafe.Offsetof(b.R); off != 8 {
		t.Errorf("Offsetof(R) = %d, expected 8", off)
	}
	if off := unsafe.Offsetof(b.Velocity); off != 12 {
		t.Errorf("Offsetof(Velocity) = %d, expected 12", off)
	}
}

func TestSurfaceNormal(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		s        Surface
		expected Vec2
	}{
		{"floor points up", Floor, Vec2{X: 0, Y: 1}},
		{"reversed points down", Surface{A: Pos2{X: 1}, B: Pos2{X: 0}}, Vec2{X: 0, Y: -1}},
		{"long floor is unit", Surface{A: Pos2{X: 0}, B: Pos2{X: 5}}, Vec2{X: 0, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := e.SurfaceNormal(tc.s)
			if !approx(n.X, tc.expected.X) || !approx(n.Y, tc.expected.Y) {
				t.Errorf("SurfaceNormal() = %+v, expected %+v", n, tc.expected)
			}
		})
	}
}

func TestSurfaceCollisionResolution(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name       string
		p          Pos2
		v          Vec2
		collided   bool
		resolution Vec2
	}{
		{"moving through floor", Pos2{X: 0.5, Y: 0.0}, Vec2{X: 0, Y: -0.1}, true, Vec2{X: 0, Y: 0.1}},
		{"moving away", Pos2{X: 0.5, Y: 0.1}, Vec2{X: 0, Y: 0.1}, false, Vec2{}},
		{"stopping above", Pos2{X: 0.5, Y: 0.2}, Vec2{X: 0, Y: -0.1}, false, Vec2{}},
		{"resting exactly on", Pos2{X: 0.5, Y: 0}, Vec2{}, false, Vec2{}},
		{"beyond right edge", Pos2{X: 1.5, Y: 0.05}, Vec2{X: 0, Y: -0.1}, false, Vec2{}},
		{"beyond left edge", Pos2{X: -0.1, Y: 0.05}, Vec2{X: 0, Y: -0.1}, false, Vec2{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, ok := e.SurfaceCollisionResolution(Floor, tc.p, tc.v)
			if ok != tc.collided {
				t.Fatalf("collided = %v, expected %v", ok, tc.collided)
			}
			if !approx(res.X, tc.resolution.X) || !approx(res.Y, tc.resolution.Y) {
				t.Errorf("resolution = %+v, expected %+v", res, tc.resolution)
			}
		})
	}
}

func TestApplyBallCollision(t *testing.T) {
	e := NewEngine()
	b := Ball{Pos: Pos2{X: 0.5, Y: 0.05}, R: 0.05, Velocity: Vec2{X: 0.2, Y: -1}}

	e.ApplyBallCollision(&b, Vec2{Y: 0.1}, Vec2{Y: 1}, Vec2{}, 0.1, 0.9)

	if !approx(b.Velocity.Y, 0.9) {
		t.Errorf("Velocity.Y = %v, expected 0.9", b.Velocity.Y)
	}
	if !approx(b.Velocity.X, 0.2) {
		t.Errorf("Velocity.X = %v, expected tangential part untouched", b.Velocity.X)
	}
	if !approx(b.Pos.Y, 0.15) {
		t.Errorf("Pos.Y = %v, expected 0.15", b.Pos.Y)
	}
}

func TestApplyBallCollisionSeparating(t *testing.T) {
	e := NewEngine()
	b := Ball{Velocity: Vec2{Y: 1}}

	e.ApplyBallCollision(&b, Vec2{}, Vec2{Y: 1}, Vec2{}, 0.1, 0.9)

	if b.Velocity.Y != 1 {
		t.Errorf("separating ball should keep its velocity, got %v", b.Velocity.Y)
	}
}

func TestSurfacePushIfColliding(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name string
		ball Ball
		y    float32
	}{
		{"overlapping", Ball{Pos: Pos2{X: 0.5, Y: 0.02}, R: 0.05}, 0.05},
		{"fully below", Ball{Pos: Pos2{X: 0.5, Y: -0.3}, R: 0.05}, 0.05},
		{"touching", Ball{Pos: Pos2{X: 0.5, Y: 0.05}, R: 0.05}, 0.05},
		{"clear", Ball{Pos: Pos2{X: 0.5, Y: 0.5}, R: 0.05}, 0.5},
		{"off segment", Ball{Pos: Pos2{X: 2, Y: -1}, R: 0.05}, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.ball
			e.SurfacePushIfColliding(Floor, &b, 0.016)
			if !approx(b.Pos.Y, tc.y) {
				t.Errorf("Pos.Y = %v, expected %v", b.Pos.Y, tc.y)
			}
			if b.Pos.X != tc.ball.Pos.X {
				t.Errorf("Pos.X changed from %v to %v", tc.ball.Pos.X, b.Pos.X)
			}
		})
	}
}

func TestAdvanceAndGravity(t *testing.T) {
	b := Ball{Pos: Pos2{X: 0.5, Y: 0.5}, Velocity: Vec2{X: 1, Y: 0}}

	ApplyGravity(&b, -2, 0.5)
	if !approx(b.Velocity.Y, -1) {
		t.Errorf("Velocity.Y = %v, expected -1", b.Velocity.Y)
	}

	b.Advance(0.5)
	if !approx(b.Pos.X, 1) || !approx(b.Pos.Y, 0) {
		t.Errorf("Pos = %+v, expected (1, 0)", b.Pos)
	}
}

func TestNormalizedZero(t *testing.T) {
	if n := (Vec2{}).Normalized(); n != (Vec2{}) {
		t.Errorf("Normalized() of zero = %+v", n)
	}
}
