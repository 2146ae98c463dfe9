// chamber drives a ball chamber: balls fall onto a floor and a seven-segment
// counter of how many are stepped is drawn into a pixel canvas.
//
// Usage:
//
//	chamber run                - Watch and steer a chamber in the terminal
//	chamber simulate           - Step a chamber headless and print the counter
//	chamber save <slot> <n>    - Write a save buffer holding n into a slot
//	chamber load <slot>        - Load a slot into a chamber and draw it
//	chamber slots              - List save slots and recent runs
//	chamber serve              - Start SSH server with one chamber per session
//	chamber stream             - Stream frames to websocket clients
//	chamber watch <url>        - Read frames from a stream server
//	chamber config             - Print the default config
//
// Global flags:
//
//	--config <path>     - Chamber config YAML
//	--preset <name>     - Preset: calm, normal, crowded
//	--db <path>         - Save database path (default: from config)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-chamber/internal/config"
	"github.com/vovakirdan/ball-chamber/internal/physics"
	"github.com/vovakirdan/ball-chamber/internal/sim"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagDBPath   string
	flagLogLevel string
	flagSeed     int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chamber",
	Short: "Ball chamber - falling balls and a seven-segment counter",
	Long: `Ball chamber steps balls against a floor and draws a three digit
seven-segment readout of how many balls it stepped.

Available commands:
  run       - Watch and steer a chamber in the terminal
  simulate  - Step a chamber headless and print the counter
  save      - Write a save buffer into a slot
  load      - Load a slot and draw the counter
  slots     - List save slots and recent runs
  serve     - Start SSH server for remote viewers
  stream    - Stream frames to websocket clients
  watch     - Read frames from a stream server
  config    - Print the default config

Examples:
  chamber run
  chamber run --preset crowded
  chamber simulate --ticks 600 --ascii
  chamber serve --ssh :2222
  chamber stream --addr :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to chamber config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: calm, normal, crowded")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to save database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, or time based)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the global flags on top.
func loadConfig() (config.ChamberConfig, error) {
	cfg, err := config.LoadChamber(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, config.Preset(flagPreset)); err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagSeed != 0 {
		cfg.Spawn.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cfg config.ChamberConfig, prefix string) *log.Logger {
	// Validate already checked the level.
	level, _ := config.ParseLevel(cfg.Log.Level)
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// newDriver builds a driver on the in-process physics engine.
func newDriver(cfg config.ChamberConfig, logger *log.Logger) (*sim.Driver, error) {
	return sim.New(cfg.Runtime(), physics.NewEngine(), logger)
}

// mustConfig loads the config or exits.
func mustConfig() config.ChamberConfig {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
