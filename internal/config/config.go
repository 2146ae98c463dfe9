// Package config provides YAML-based chamber configuration loading and
// the named presets for the chamber host.
package config

import (
	"fmt"

	"github.com/vovakirdan/ball-chamber/internal/core"
)

// ChamberConfig contains all configuration for a chamber host.
type ChamberConfig struct {
	Capacity   CapacityConfig   `yaml:"capacity"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Simulation SimulationConfig `yaml:"simulation"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Storage    StorageConfig    `yaml:"storage"`
	Stream     StreamConfig     `yaml:"stream"`
	SSH        SSHConfig        `yaml:"ssh"`
	Log        LogConfig        `yaml:"log"`
}

// CapacityConfig sizes the chamber buffers passed to init.
type CapacityConfig struct {
	MaxBalls         int `yaml:"max_balls"`
	MaxChamberPixels int `yaml:"max_chamber_pixels"`
}

// CanvasConfig is the active render region.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SimulationConfig controls the host-side stepping.
type SimulationConfig struct {
	Delta    float32 `yaml:"delta"`     // Time per step
	TickRate int     `yaml:"tick_rate"` // Frames per second for interactive hosts
	Gravity  float32 `yaml:"gravity"`
	Mirror   bool    `yaml:"mirror"` // Render through a separate display chamber
}

// SpawnConfig controls how the host places balls.
type SpawnConfig struct {
	Count     int     `yaml:"count"`
	MinRadius float32 `yaml:"min_radius"`
	MaxRadius float32 `yaml:"max_radius"`
	MaxSpeed  float32 `yaml:"max_speed"`
	Seed      int64   `yaml:"seed"` // 0 = random based on time
}

// StorageConfig points at the save slot database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// StreamConfig configures the websocket frame stream.
type StreamConfig struct {
	Address string `yaml:"address"`
	FPS     int    `yaml:"fps"`
}

// SSHConfig configures the SSH viewer server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that the config describes a usable chamber.
func (c ChamberConfig) Validate() error {
	if c.Capacity.MaxBalls < 0 {
		return fmt.Errorf("config: capacity.max_balls must not be negative, got %d", c.Capacity.MaxBalls)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("config: canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Width*c.Canvas.Height > c.Capacity.MaxChamberPixels {
		return fmt.Errorf("config: canvas %dx%d does not fit in %d pixels",
			c.Canvas.Width, c.Canvas.Height, c.Capacity.MaxChamberPixels)
	}
	if c.Simulation.Delta <= 0 {
		return fmt.Errorf("config: simulation.delta must be positive, got %v", c.Simulation.Delta)
	}
	if c.Simulation.TickRate <= 0 {
		return fmt.Errorf("config: simulation.tick_rate must be positive, got %d", c.Simulation.TickRate)
	}
	if c.Spawn.Count < 0 || c.Spawn.Count > c.Capacity.MaxBalls {
		return fmt.Errorf("config: spawn.count %d outside [0, %d]", c.Spawn.Count, c.Capacity.MaxBalls)
	}
	if c.Spawn.MinRadius <= 0 || c.Spawn.MaxRadius < c.Spawn.MinRadius {
		return fmt.Errorf("config: bad spawn radius range [%v, %v]", c.Spawn.MinRadius, c.Spawn.MaxRadius)
	}
	if c.Stream.FPS <= 0 {
		return fmt.Errorf("config: stream.fps must be positive, got %d", c.Stream.FPS)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Runtime converts the config to the values a host drives a chamber with.
func (c ChamberConfig) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		MaxBalls:     c.Capacity.MaxBalls,
		MaxPixels:    c.Capacity.MaxChamberPixels,
		CanvasW:      c.Canvas.Width,
		CanvasH:      c.Canvas.Height,
		TickRate:     c.Simulation.TickRate,
		Delta:        c.Simulation.Delta,
		Gravity:      c.Simulation.Gravity,
		Seed:         c.Spawn.Seed,
		Mirror:       c.Simulation.Mirror,
		InitialBalls: c.Spawn.Count,
		MinRadius:    c.Spawn.MinRadius,
		MaxRadius:    c.Spawn.MaxRadius,
		MaxSpeed:     c.Spawn.MaxSpeed,
	}
}
