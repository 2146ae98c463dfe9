// Package chamber owns the buffers of one ball chamber and implements the
// per-tick step, the counter render and the one-byte save format.
//
// A Chamber does no locking. The host must serialize every call, and must not
// touch the exposed ball or canvas memory while Step or Render runs.
// Contract violations (use before Init, counts beyond capacity) panic.
package chamber

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-chamber/internal/physics"
)

const (
	// SaveSize is the size in bytes of the persisted state.
	SaveSize = 1

	// MaxCount is the largest ball count the state can hold.
	MaxCount = 255

	// Restitution is applied to every floor collision.
	Restitution float32 = 0.9
)

// State is the scalar simulation state. It is all that survives save/load.
type State struct {
	NumBalls uint8 // Balls considered by the last Step
}

// Chamber holds the ball, canvas, state and save buffers.
type Chamber struct {
	balls   []physics.Ball
	canvas  []uint32
	state   *State
	save    *[SaveSize]byte
	physics physics.Collaborator
	logger  *log.Logger
}

// Option configures a Chamber.
type Option func(*Chamber)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Chamber) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a chamber that resolves contacts through collab.
// No buffers exist until Init is called.
func New(collab physics.Collaborator, opts ...Option) *Chamber {
	if collab == nil {
		panic("chamber: nil physics collaborator")
	}
	c := &Chamber{
		physics: collab,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init allocates every buffer, zeroed. Calling it again discards all previous
// contents and invalidates every pointer handed out before.
func (c *Chamber) Init(maxBalls, maxPixels int) {
	if maxBalls < 0 || maxPixels < 0 {
		panic(fmt.Sprintf("chamber: negative capacity (balls=%d, pixels=%d)", maxBalls, maxPixels))
	}

	c.balls = make([]physics.Ball, maxBalls)
	c.canvas = make([]uint32, maxPixels)
	c.state = &State{}
	c.save = new([SaveSize]byte)

	c.logger.Debug("chamber initialized", "max_balls", maxBalls, "max_pixels", maxPixels)
}

func (c *Chamber) mustInit() {
	if c.state == nil {
		panic("chamber: used before Init")
	}
}

// BallCapacity returns the number of ball slots.
func (c *Chamber) BallCapacity() int {
	return len(c.balls)
}

// PixelCapacity returns the number of canvas pixels.
func (c *Chamber) PixelCapacity() int {
	return len(c.canvas)
}

// State returns a copy of the scalar state.
func (c *Chamber) State() State {
	c.mustInit()
	return *c.state
}

// Balls returns the ball buffer. Writes go straight into chamber memory.
func (c *Chamber) Balls() []physics.Ball {
	c.mustInit()
	return c.balls
}

// Canvas returns the full canvas buffer.
func (c *Chamber) Canvas() []uint32 {
	c.mustInit()
	return c.canvas
}

// SaveBuffer returns the save buffer.
func (c *Chamber) SaveBuffer() []byte {
	c.mustInit()
	return c.save[:]
}

// BallsMemory returns the base address of the ball buffer.
func (c *Chamber) BallsMemory() unsafe.Pointer {
	c.mustInit()
	return unsafe.Pointer(unsafe.SliceData(c.balls))
}

// CanvasMemory returns the base address of the canvas buffer.
func (c *Chamber) CanvasMemory() unsafe.Pointer {
	c.mustInit()
	return unsafe.Pointer(unsafe.SliceData(c.canvas))
}

// SaveMemory returns the base address of the save buffer.
func (c *Chamber) SaveMemory() unsafe.Pointer {
	c.mustInit()
	return unsafe.Pointer(c.save)
}
