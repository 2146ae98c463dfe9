package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/platform/tui"
	"github.com/vovakirdan/ball-chamber/internal/storage"
)

var (
	flagTicks    int
	flagEvery    int
	flagASCII    bool
	flagCols     int
	flagSaveSlot string
	flagRecord   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Step a chamber headless and print the counter",
	Long: `Step a chamber for a fixed number of ticks without a terminal UI.

The counter is printed every --every ticks and once at the end.
With --ascii the final canvas is drawn as text.

Examples:
  chamber simulate
  chamber simulate --ticks 1200 --every 120
  chamber simulate --preset crowded --ascii
  chamber simulate --save-slot nightly --record`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 600, "Number of steps to run")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 60, "Print the counter every N ticks (0 = only at the end)")
	simulateCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Draw the final canvas as text")
	simulateCmd.Flags().IntVar(&flagCols, "cols", 60, "Text width for --ascii")
	simulateCmd.Flags().StringVar(&flagSaveSlot, "save-slot", "", "Save the final counter into this slot")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record the run in the save database")
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := mustConfig()
	logger := newLogger(cfg, "chamber-sim")

	driver, err := newDriver(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i := 1; i <= flagTicks; i++ {
		driver.Tick()
		if flagEvery > 0 && i%flagEvery == 0 {
			printStats(driver.Stats())
		}
	}

	pix := driver.Render()
	stats := driver.Stats()
	if flagEvery <= 0 || flagTicks%flagEvery != 0 {
		printStats(stats)
	}

	if flagASCII {
		rt := driver.Config()
		rows := core.Max(flagCols*rt.CanvasH/rt.CanvasW/2, 1)
		screen := core.NewScreen(flagCols, rows)
		tui.DrawCanvas(screen, pix, rt.CanvasW, rt.CanvasH)
		tui.DrawBalls(screen, driver.Physics().Balls()[:driver.Active()], rt.CanvasW, rt.CanvasH)
		fmt.Println(screen.String())
	}

	if flagSaveSlot == "" && !flagRecord {
		return
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagSaveSlot != "" {
		if _, err := store.SaveSlot(flagSaveSlot, driver.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved %03d to slot %q\n", stats.NumBalls, flagSaveSlot)
	}

	if flagRecord {
		_, err := store.RecordRun(storage.RunRecord{
			Ticks:      flagTicks,
			Balls:      stats.Active,
			FinalCount: int(stats.NumBalls),
			Seed:       driver.Config().Seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error recording run: %v\n", err)
			os.Exit(1)
		}
	}
}

func printStats(s core.FrameStats) {
	fmt.Printf("tick %6d  count %03d  balls %d\n", s.Tick, s.NumBalls, s.Active)
}
