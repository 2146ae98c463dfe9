package config

import (
	_ "embed"
)

//go:embed defaults/chamber.yaml
var defaultChamberYAML []byte

// DefaultChamberConfig returns the default chamber configuration.
func DefaultChamberConfig() ChamberConfig {
	return ChamberConfig{
		Capacity: CapacityConfig{
			MaxBalls:         256,
			MaxChamberPixels: 300 * 300,
		},
		Canvas: CanvasConfig{
			Width:  300,
			Height: 300,
		},
		Simulation: SimulationConfig{
			Delta:    0.016,
			TickRate: 60,
			Gravity:  -2.0,
			Mirror:   true,
		},
		Spawn: SpawnConfig{
			Count:     12,
			MinRadius: 0.01,
			MaxRadius: 0.03,
			MaxSpeed:  0.4,
			Seed:      0,
		},
		Storage: StorageConfig{
			Path: "~/.chamber/saves.db",
		},
		Stream: StreamConfig{
			Address: ":8080",
			FPS:     30,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultChamberYAML
}
