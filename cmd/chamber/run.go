package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ball-chamber/internal/platform/tui"
	"github.com/vovakirdan/ball-chamber/internal/storage"
)

var flagSlot string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch and steer a chamber in the terminal",
	Long: `Start a chamber and preview its canvas in the terminal.

Controls:
  A/+        - Add a ball
  X/-        - Remove the newest ball
  S          - Save the counter to the slot
  L          - Load the counter from the slot
  R          - Respawn every ball
  P/Space    - Pause
  Tab        - Browse save slots
  ?          - More keys
  Q/Ctrl+C   - Quit

Examples:
  chamber run
  chamber run --preset calm
  chamber run --slot mine --db ./saves.db`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagSlot, "slot", tui.DefaultSlot, "Save slot for S/L")
}

func runRun(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: run needs a terminal, try 'chamber simulate'")
		os.Exit(1)
	}

	cfg := mustConfig()

	// Logs would tear the alt screen; keep them only when asked for.
	logger := log.New(io.Discard)
	if flagLogLevel != "" {
		logger = newLogger(cfg, "chamber")
	}

	driver, err := newDriver(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open save storage
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open save database: %v\n", err)
		// Continue without storage - the chamber still runs
		store = nil
	}

	runErr := tui.Run(driver, store, flagSlot)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running chamber: %v\n", runErr)
		os.Exit(1)
	}
}
