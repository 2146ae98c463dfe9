package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-chamber/internal/chamber"
	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/physics"
	"github.com/vovakirdan/ball-chamber/internal/platform/tui"
	"github.com/vovakirdan/ball-chamber/internal/storage"
)

var (
	flagLimit  int
	flagDelete string
)

var saveCmd = &cobra.Command{
	Use:   "save <slot> <count>",
	Short: "Write a save buffer holding count into a slot",
	Long: `Write a save buffer directly, the way a host would, and store it.
count must be in [0, 255].

Examples:
  chamber save demo 42`,
	Args: cobra.ExactArgs(2),
	Run:  runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load <slot>",
	Short: "Load a slot into a chamber and draw the counter",
	Long: `Load the newest save of a slot into a fresh chamber, render it and
print the canvas as text.

Examples:
  chamber load demo
  chamber load quick --cols 80`,
	Args: cobra.ExactArgs(1),
	Run:  runLoad,
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots and recent runs",
	Long: `Show the newest save of every slot and the most recent headless runs.

Examples:
  chamber slots
  chamber slots --limit 5
  chamber slots --delete demo`,
	Run: runSlots,
}

func init() {
	loadCmd.Flags().IntVar(&flagCols, "cols", 60, "Text width of the drawing")
	slotsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum rows per table")
	slotsCmd.Flags().StringVar(&flagDelete, "delete", "", "Delete every save of this slot")
}

// openStore opens the configured save database or exits.
func openStore() *storage.Store {
	cfg := mustConfig()
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runSave(_ *cobra.Command, args []string) {
	n, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: count must be in [0, 255], got %q\n", args[1])
		os.Exit(1)
	}

	c := chamber.New(physics.NewEngine())
	c.Init(0, 0)
	c.SaveBuffer()[0] = byte(n)

	store := openStore()
	defer store.Close()

	if _, err := store.SaveSlot(args[0], c.SaveBuffer()); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving slot: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %03d to slot %q\n", n, args[0])
}

func runLoad(_ *cobra.Command, args []string) {
	cfg := mustConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening save database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	e, err := store.LatestSlot(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading slot: %v\n", err)
		os.Exit(1)
	}
	if e == nil {
		fmt.Fprintf(os.Stderr, "Error: slot %q is empty\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'chamber slots' to see saved slots.")
		os.Exit(1)
	}

	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	c := chamber.New(physics.NewEngine(), chamber.WithLogger(newLogger(cfg, "chamber")))
	c.Init(0, w*h)
	copy(c.SaveBuffer(), e.Data)
	c.Load()
	c.Render(w, h)

	fmt.Printf("Slot %q saved %s: count %03d\n", e.Name, e.CreatedAt.Format("2006-01-02 15:04"), c.State().NumBalls)

	screen := core.NewScreen(flagCols, core.Max(flagCols*h/w/2, 1))
	tui.DrawCanvas(screen, c.Canvas()[:w*h], w, h)
	fmt.Println(screen.String())
}

func runSlots(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if flagDelete != "" {
		n, err := store.DeleteSlot(flagDelete)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted %d saves of slot %q\n", n, flagDelete)
		return
	}

	slots, err := store.ListSlots(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving slots: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Save slots")
	fmt.Println()
	if len(slots) == 0 {
		fmt.Println("No saves yet.")
	} else {
		fmt.Printf("  %-16s  %-5s  %s\n", "Slot", "Count", "Saved")
		fmt.Printf("  %-16s  %-5s  %s\n", "----", "-----", "-----")
		for _, e := range slots {
			fmt.Printf("  %-16s  %03d    %s\n", e.Name, e.NumBalls, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	runs, err := store.RecentRuns(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Recent runs")
	fmt.Println()
	if len(runs) == 0 {
		fmt.Println("No runs recorded. Try 'chamber simulate --record'.")
		return
	}
	fmt.Printf("  %-6s  %-5s  %-5s  %-20s  %s\n", "Ticks", "Balls", "Count", "Seed", "Date")
	fmt.Printf("  %-6s  %-5s  %-5s  %-20s  %s\n", "-----", "-----", "-----", "----", "----")
	for _, r := range runs {
		fmt.Printf("  %-6d  %-5d  %03d    %-20d  %s\n", r.Ticks, r.Balls, r.FinalCount, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
