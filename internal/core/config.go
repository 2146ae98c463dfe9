package core

// RuntimeConfig contains the values a host needs to drive one chamber.
// It is derived from the YAML config and CLI flags by the platform layer.
type RuntimeConfig struct {
	MaxBalls  int     // Ball buffer capacity
	MaxPixels int     // Canvas buffer capacity in pixels
	CanvasW   int     // Active canvas width in pixels
	CanvasH   int     // Active canvas height in pixels
	TickRate  int     // Frames per second for interactive hosts
	Delta     float32 // Simulation time per step
	Gravity   float32 // Vertical acceleration applied by the host
	Seed      int64   // RNG seed for ball spawning
	Mirror    bool    // Render through a second chamber fed by save/load

	InitialBalls int     // Balls spawned on start
	MinRadius    float32 // Spawn radius range
	MaxRadius    float32
	MaxSpeed     float32 // Max horizontal spawn speed
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		MaxBalls:  256,
		MaxPixels: 300 * 300,
		CanvasW:   300,
		CanvasH:   300,
		TickRate:  60,
		Delta:     1.0 / 60.0,
		Gravity:   -2.0,
		Seed:      0, // 0 means use current time in platform layer
		Mirror:    true,

		InitialBalls: 12,
		MinRadius:    0.01,
		MaxRadius:    0.03,
		MaxSpeed:     0.4,
	}
}

// FrameStats is what a host reports after a frame.
type FrameStats struct {
	Tick     uint64
	NumBalls uint8 // Count shown by the counter
	Active   int   // Balls the host is stepping
}
