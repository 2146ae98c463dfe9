// Package host is the process-wide chamber a host embeds through plain
// function calls. All entry points operate on one shared Chamber built on the
// default physics engine. Nothing is locked: the host calls one entry point at
// a time and leaves the exposed memory alone while Step or Render runs.
package host

import (
	"unsafe"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ball-chamber/internal/chamber"
	"github.com/vovakirdan/ball-chamber/internal/physics"
)

var (
	logger = log.New(&sinkWriter{})
	global = chamber.New(physics.NewEngine(), chamber.WithLogger(logger))
)

// Init (re)allocates the shared chamber buffers.
func Init(maxBalls, maxChamberPixels uint32) {
	global.Init(int(maxBalls), int(maxChamberPixels))
}

// BallsMemory returns the base address of the ball buffer.
func BallsMemory() unsafe.Pointer { return global.BallsMemory() }

// CanvasMemory returns the base address of the canvas buffer.
func CanvasMemory() unsafe.Pointer { return global.CanvasMemory() }

// SaveMemory returns the base address of the save buffer.
func SaveMemory() unsafe.Pointer { return global.SaveMemory() }

// SaveSize returns the size of the save buffer in bytes.
func SaveSize() uint32 { return chamber.SaveSize }

// Save copies the ball count into the save buffer.
func Save() { global.Save() }

// Load restores the ball count from the save buffer.
func Load() { global.Load() }

// Step advances the first numBalls balls by delta.
func Step(numBalls uint32, delta float32) {
	global.Step(int(numBalls), delta)
}

// Render repaints a canvasWidth x canvasHeight region of the canvas.
func Render(canvasWidth, canvasHeight uint32) {
	global.Render(int(canvasWidth), int(canvasHeight))
}
