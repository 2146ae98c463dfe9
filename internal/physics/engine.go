package physics

// Collaborator is the contact-resolution capability used by the chamber step.
// The chamber never inspects a resolution; it only passes it back in.
type Collaborator interface {
	// SurfaceCollisionResolution reports whether point p moving by v crosses
	// surface s. When it does, the returned vector resolves the crossing.
	SurfaceCollisionResolution(s Surface, p Pos2, v Vec2) (Vec2, bool)

	// ApplyBallCollision applies a resolution and impulse to b in place.
	ApplyBallCollision(b *Ball, resolution, normal, otherVelocity Vec2, delta, restitution float32)

	// SurfacePushIfColliding moves b out of s if they currently overlap.
	SurfacePushIfColliding(s Surface, b *Ball, delta float32)

	// Vec2Mul scales v by k. Step uses it to turn a velocity into the
	// displacement over one delta.
	Vec2Mul(v Vec2, k float32) Vec2

	// SurfaceNormal returns the unit normal of s on the side balls rest on.
	SurfaceNormal(s Surface) Vec2
}

// Engine is the in-process Collaborator.
type Engine struct{}

// NewEngine returns the default collision engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Ensure Engine implements Collaborator
var _ Collaborator = (*Engine)(nil)

// Vec2Mul scales v by k.
func (e *Engine) Vec2Mul(v Vec2, k float32) Vec2 {
	return v.Mul(k)
}

// SurfaceNormal returns the unit normal of s.
func (e *Engine) SurfaceNormal(s Surface) Vec2 {
	d := s.B.Sub(s.A)
	// Rotate the direction counter-clockwise: (1,0) -> (0,1).
	return Vec2{X: -d.Y, Y: d.X}.Normalized()
}

// SurfaceCollisionResolution tests the end point p+v against the segment.
// The resolution moves the end point back onto the surface line.
func (e *Engine) SurfaceCollisionResolution(s Surface, p Pos2, v Vec2) (Vec2, bool) {
	n := e.SurfaceNormal(s)
	end := p.Add(v)

	depth := end.Sub(s.A).Dot(n)
	if depth >= 0 {
		return Vec2{}, false
	}
	if !onSegment(s, end) {
		return Vec2{}, false
	}
	return n.Mul(-depth), true
}

// ApplyBallCollision reflects the normal part of the relative velocity,
// scaled by restitution, and applies the positional resolution.
func (e *Engine) ApplyBallCollision(b *Ball, resolution, normal, otherVelocity Vec2, delta, restitution float32) {
	rel := b.Velocity.Sub(otherVelocity)
	vn := rel.Dot(normal)
	if vn < 0 {
		b.Velocity = b.Velocity.Sub(normal.Mul((1 + restitution) * vn))
	}
	b.Pos = b.Pos.Add(resolution)
}

// SurfacePushIfColliding moves b along the surface normal until it only
// touches s. Velocity is left alone.
func (e *Engine) SurfacePushIfColliding(s Surface, b *Ball, delta float32) {
	if !onSegment(s, b.Pos) {
		return
	}
	n := e.SurfaceNormal(s)
	gap := b.Pos.Sub(s.A).Dot(n) - b.R
	if gap >= 0 {
		return
	}
	b.Pos = b.Pos.Add(n.Mul(-gap))
}

// onSegment reports whether the projection of p falls within [A, B].
func onSegment(s Surface, p Pos2) bool {
	d := s.B.Sub(s.A)
	l2 := d.Length2()
	if l2 == 0 {
		return false
	}
	t := p.Sub(s.A).Dot(d) / l2
	return t >= 0 && t <= 1
}
