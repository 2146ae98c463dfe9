package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadChamber loads the chamber configuration.
// Search order: customPath -> ~/.chamber/configs/chamber.yaml -> ./configs/chamber.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file may set only the fields
// it cares about.
func LoadChamber(customPath string) (ChamberConfig, error) {
	cfg := DefaultChamberConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("chamber.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultChamberConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/chamber.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultChamberConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultChamberYAML, &cfg); err != nil {
		return DefaultChamberConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chamber", "configs", filename)
}

// ParseLevel maps a config log level to a charmbracelet/log level.
// An empty string means info.
func ParseLevel(s string) (log.Level, error) {
	if strings.TrimSpace(s) == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(strings.ToLower(s))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: unknown log level %q", s)
	}
	return level, nil
}
