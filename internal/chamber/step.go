package chamber

import (
	"fmt"

	"github.com/vovakirdan/ball-chamber/internal/physics"
)

// Step advances the first numBalls balls by delta against the floor and
// records min(numBalls, MaxCount) as the ball count.
//
// Each ball gets a predictive pass (collision test on the displacement it is
// about to make) and then an unconditional depenetration pass, so a ball can
// be resolved and pushed out in the same tick.
func (c *Chamber) Step(numBalls int, delta float32) {
	c.mustInit()
	if numBalls < 0 || numBalls > len(c.balls) {
		panic(fmt.Sprintf("chamber: step over %d balls, capacity is %d", numBalls, len(c.balls)))
	}

	surface := physics.Floor
	normal := c.physics.SurfaceNormal(surface)
	var still physics.Vec2

	balls := c.balls[:numBalls]
	for i := range balls {
		b := &balls[i]

		contact := b.Pos.Add(normal.Mul(-b.R))
		displacement := c.physics.Vec2Mul(b.Velocity, delta)

		if resolution, ok := c.physics.SurfaceCollisionResolution(surface, contact, displacement); ok {
			c.physics.ApplyBallCollision(b, resolution, normal, still, delta, Restitution)
		}

		c.physics.SurfacePushIfColliding(surface, b, delta)
	}

	c.state.NumBalls = uint8(min(numBalls, MaxCount))
}
