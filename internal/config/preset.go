package config

import "fmt"

// Preset is a named chamber setup.
type Preset string

const (
	PresetCalm    Preset = "calm"
	PresetNormal  Preset = "normal"
	PresetCrowded Preset = "crowded"
)

// Presets lists every preset in display order.
func Presets() []Preset {
	return []Preset{PresetCalm, PresetNormal, PresetCrowded}
}

// ApplyPreset modifies the config based on a preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *ChamberConfig, preset Preset) error {
	switch preset {
	case "":
		return nil
	case PresetCalm:
		cfg.Spawn.Count = min(3, cfg.Capacity.MaxBalls)
		cfg.Spawn.MaxSpeed = 0.1
		cfg.Simulation.Gravity = -1.0
	case PresetNormal:
		cfg.Spawn.Count = min(12, cfg.Capacity.MaxBalls)
	case PresetCrowded:
		// More balls than the counter can show, to exercise the 255 clamp.
		cfg.Capacity.MaxBalls = max(cfg.Capacity.MaxBalls, 300)
		cfg.Spawn.Count = 300
		cfg.Spawn.MinRadius = 0.005
		cfg.Spawn.MaxRadius = 0.01
	default:
		return fmt.Errorf("config: unknown preset %q", preset)
	}
	return nil
}
