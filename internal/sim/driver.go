// Package sim plays the host side of a chamber: it spawns balls into the
// exposed ball buffer, integrates gravity and motion, calls Step and Render
// in order, and optionally mirrors the counter into a second display chamber
// through the save/load buffers.
package sim

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-chamber/internal/chamber"
	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/physics"
)

// maxCatchUp bounds how many steps StepUntil runs in one call.
const maxCatchUp = 240

// Driver owns the chambers and every call into them. It is not safe for
// concurrent use; hosts call it from one goroutine.
type Driver struct {
	cfg     core.RuntimeConfig
	physics *chamber.Chamber
	display *chamber.Chamber // same as physics unless mirrored
	rng     *rand.Rand
	logger  *log.Logger

	active  int
	tick    uint64
	simTime float64
	paused  bool
}

// New validates cfg and builds a driver with its initial balls spawned.
func New(cfg core.RuntimeConfig, collab physics.Collaborator, logger *log.Logger) (*Driver, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	d := &Driver{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}

	d.physics = chamber.New(collab, chamber.WithLogger(logger))
	d.physics.Init(cfg.MaxBalls, cfg.MaxPixels)
	d.display = d.physics
	if cfg.Mirror {
		d.display = chamber.New(collab, chamber.WithLogger(logger))
		d.display.Init(0, cfg.MaxPixels)
	}

	for i := 0; i < cfg.InitialBalls; i++ {
		if !d.Spawn() {
			break
		}
	}

	logger.Info("chamber ready",
		"balls", d.active,
		"capacity", cfg.MaxBalls,
		"canvas", fmt.Sprintf("%dx%d", cfg.CanvasW, cfg.CanvasH),
		"mirror", cfg.Mirror,
	)
	return d, nil
}

func validate(cfg core.RuntimeConfig) error {
	if cfg.MaxBalls < 0 {
		return fmt.Errorf("sim: negative ball capacity %d", cfg.MaxBalls)
	}
	if cfg.CanvasW <= 0 || cfg.CanvasH <= 0 {
		return fmt.Errorf("sim: canvas must be positive, got %dx%d", cfg.CanvasW, cfg.CanvasH)
	}
	if cfg.CanvasW*cfg.CanvasH > cfg.MaxPixels {
		return fmt.Errorf("sim: canvas %dx%d exceeds pixel capacity %d", cfg.CanvasW, cfg.CanvasH, cfg.MaxPixels)
	}
	if cfg.Delta <= 0 {
		return fmt.Errorf("sim: delta must be positive, got %v", cfg.Delta)
	}
	if cfg.MinRadius <= 0 || cfg.MaxRadius < cfg.MinRadius {
		return fmt.Errorf("sim: bad radius range [%v, %v]", cfg.MinRadius, cfg.MaxRadius)
	}
	return nil
}

// Config returns the runtime config, with the resolved seed.
func (d *Driver) Config() core.RuntimeConfig {
	return d.cfg
}

// Active returns the number of balls being stepped.
func (d *Driver) Active() int {
	return d.active
}

// Paused reports whether stepping is suspended.
func (d *Driver) Paused() bool {
	return d.paused
}

// Physics returns the chamber that balls are stepped in.
func (d *Driver) Physics() *chamber.Chamber {
	return d.physics
}

// Display returns the chamber the canvas is rendered from.
func (d *Driver) Display() *chamber.Chamber {
	return d.display
}

// height is the chamber height in normalized units.
func (d *Driver) height() float32 {
	return float32(d.cfg.CanvasH) / float32(d.cfg.CanvasW)
}

// Spawn writes a new ball into the next free slot.
// Returns false when the ball buffer is full.
func (d *Driver) Spawn() bool {
	balls := d.physics.Balls()
	if d.active >= len(balls) {
		return false
	}
	d.place(&balls[d.active])
	d.active++
	return true
}

// Remove drops the newest ball. Returns false when there are none.
func (d *Driver) Remove() bool {
	if d.active == 0 {
		return false
	}
	d.active--
	d.physics.Balls()[d.active] = physics.Ball{}
	return true
}

// Reset places every active ball again.
func (d *Driver) Reset() {
	balls := d.physics.Balls()
	for i := 0; i < d.active; i++ {
		d.place(&balls[i])
	}
	d.logger.Debug("balls reset", "balls", d.active)
}

// place puts b somewhere in the upper half of the chamber.
func (d *Driver) place(b *physics.Ball) {
	r := d.cfg.MinRadius + d.rng.Float32()*(d.cfg.MaxRadius-d.cfg.MinRadius)
	top := d.height()
	*b = physics.Ball{
		Pos: physics.Pos2{
			X: r + d.rng.Float32()*(1-2*r),
			Y: top*0.5 + d.rng.Float32()*(top*0.5-r),
		},
		R: r,
		Velocity: physics.Vec2{
			X: (d.rng.Float32()*2 - 1) * d.cfg.MaxSpeed,
		},
	}
}

// Apply handles host actions for this frame.
func (d *Driver) Apply(in core.InputFrame) {
	if in.Has(core.ActionAddBall) {
		d.Spawn()
	}
	if in.Has(core.ActionRemoveBall) {
		d.Remove()
	}
	if in.Has(core.ActionReset) {
		d.Reset()
	}
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
}

// Tick runs one fixed step unless paused.
func (d *Driver) Tick() {
	if d.paused {
		return
	}

	delta := d.cfg.Delta
	balls := d.physics.Balls()[:d.active]
	for i := range balls {
		b := &balls[i]
		physics.ApplyGravity(b, d.cfg.Gravity, delta)
		b.Advance(delta)
		if d.escaped(b) {
			d.place(b)
		}
	}

	d.physics.Step(d.active, delta)
	d.tick++
	d.simTime += float64(delta)
}

// escaped reports whether b has left the chamber past the floor edges.
func (d *Driver) escaped(b *physics.Ball) bool {
	return b.Pos.X < -b.R || b.Pos.X > 1+b.R || b.Pos.Y < -d.height()
}

// StepUntil runs fixed steps until simulated time reaches elapsed seconds.
// It returns the number of steps taken.
func (d *Driver) StepUntil(elapsed float64) int {
	if d.paused {
		// Paused time is not owed once stepping resumes.
		d.simTime = elapsed
		return 0
	}
	steps := 0
	for d.simTime+float64(d.cfg.Delta) <= elapsed && steps < maxCatchUp {
		d.Tick()
		steps++
	}
	if steps == maxCatchUp {
		// Drop the backlog instead of spiraling.
		d.simTime = elapsed
		d.logger.Warn("simulation fell behind", "elapsed", elapsed)
	}
	return steps
}

// sync copies the physics counter into the display chamber.
func (d *Driver) sync() {
	if d.display == d.physics {
		return
	}
	d.physics.Save()
	copy(d.display.SaveBuffer(), d.physics.SaveBuffer())
	d.display.Load()
}

// Render repaints the display canvas and returns the active pixels.
func (d *Driver) Render() []uint32 {
	d.sync()
	d.display.Render(d.cfg.CanvasW, d.cfg.CanvasH)
	return d.display.Canvas()[:d.cfg.CanvasW*d.cfg.CanvasH]
}

// Stats reports the current frame counters. NumBalls comes from the physics
// chamber, so it is current even before the display has been rendered.
func (d *Driver) Stats() core.FrameStats {
	return core.FrameStats{
		Tick:     d.tick,
		NumBalls: d.physics.State().NumBalls,
		Active:   d.active,
	}
}

// Snapshot saves the physics chamber and returns a copy of its save bytes.
func (d *Driver) Snapshot() []byte {
	d.physics.Save()
	return append([]byte(nil), d.physics.SaveBuffer()...)
}

// Restore loads save bytes into the physics chamber and spawns or removes
// balls until the active count matches the restored count.
func (d *Driver) Restore(data []byte) error {
	if len(data) != d.physics.SaveSize() {
		return fmt.Errorf("sim: save data is %d bytes, expected %d", len(data), d.physics.SaveSize())
	}
	copy(d.physics.SaveBuffer(), data)
	d.physics.Load()

	want := core.Min(int(d.physics.State().NumBalls), d.physics.BallCapacity())
	for d.active < want {
		d.Spawn()
	}
	for d.active > want {
		d.Remove()
	}
	d.sync()

	d.logger.Info("state restored", "num_balls", d.physics.State().NumBalls, "balls", d.active)
	return nil
}
