package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg ChamberConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultChamberConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultChamberConfig() %+v", cfg, DefaultChamberConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultChamberConfig().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadChamberCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chamber.yaml")
	data := []byte("canvas:\n  width: 100\n  height: 50\nspawn:\n  count: 4\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadChamber(path)
	if err != nil {
		t.Fatalf("LoadChamber() failed: %v", err)
	}

	if cfg.Canvas.Width != 100 || cfg.Canvas.Height != 50 {
		t.Errorf("canvas = %dx%d, expected 100x50", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Spawn.Count != 4 {
		t.Errorf("spawn.count = %d, expected 4", cfg.Spawn.Count)
	}
	// Unset fields keep their defaults
	if cfg.Capacity.MaxBalls != 256 {
		t.Errorf("capacity.max_balls = %d, expected default 256", cfg.Capacity.MaxBalls)
	}
}

func TestLoadChamberErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadChamber(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("canvas: [1, 2"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := LoadChamber(bad); err == nil {
		t.Error("malformed config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ChamberConfig)
	}{
		{"canvas exceeds capacity", func(c *ChamberConfig) { c.Capacity.MaxChamberPixels = 100 }},
		{"zero canvas", func(c *ChamberConfig) { c.Canvas.Width = 0 }},
		{"negative balls", func(c *ChamberConfig) { c.Capacity.MaxBalls = -1 }},
		{"zero delta", func(c *ChamberConfig) { c.Simulation.Delta = 0 }},
		{"zero tick rate", func(c *ChamberConfig) { c.Simulation.TickRate = 0 }},
		{"spawn beyond capacity", func(c *ChamberConfig) { c.Spawn.Count = 1000 }},
		{"inverted radius", func(c *ChamberConfig) { c.Spawn.MaxRadius = 0.001 }},
		{"zero stream fps", func(c *ChamberConfig) { c.Stream.FPS = 0 }},
		{"bad log level", func(c *ChamberConfig) { c.Log.Level = "loud" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChamberConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultChamberConfig()
	cfg.Spawn.Seed = 7

	rt := cfg.Runtime()
	if rt.MaxBalls != 256 || rt.MaxPixels != 90000 || rt.CanvasW != 300 || rt.CanvasH != 300 {
		t.Errorf("unexpected sizes %+v", rt)
	}
	if rt.Seed != 7 || !rt.Mirror || rt.InitialBalls != 12 {
		t.Errorf("unexpected runtime %+v", rt)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultChamberConfig()
	if err := ApplyPreset(&cfg, PresetCrowded); err != nil {
		t.Fatalf("ApplyPreset() failed: %v", err)
	}
	if cfg.Capacity.MaxBalls != 300 || cfg.Spawn.Count != 300 {
		t.Errorf("crowded preset gave %d/%d balls", cfg.Spawn.Count, cfg.Capacity.MaxBalls)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("crowded preset should validate: %v", err)
	}

	for _, p := range Presets() {
		c := DefaultChamberConfig()
		if err := ApplyPreset(&c, p); err != nil {
			t.Errorf("ApplyPreset(%s) failed: %v", p, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("preset %s does not validate: %v", p, err)
		}
	}

	if err := ApplyPreset(&cfg, "chaos"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
	}{
		{"", log.InfoLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"error", log.ErrorLevel},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}
