package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/platform/tui"
	"github.com/vovakirdan/ball-chamber/internal/stream"
)

var (
	flagWatchFrames int
	flagWatchASCII  bool
	flagWatchCols   int
	flagWatchAdd    int
)

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Read frames from a stream server",
	Long: `Connect to a running "chamber stream" server and print the counter
carried by each frame.

Examples:
  chamber watch ws://localhost:8080/ws
  chamber watch ws://localhost:8080/ws --frames 1 --ascii
  chamber watch ws://localhost:8080/ws --add 3`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchFrames, "frames", 10, "Number of frames to read (0 = until interrupted)")
	watchCmd.Flags().BoolVar(&flagWatchASCII, "ascii", false, "Draw the last frame as text")
	watchCmd.Flags().IntVar(&flagWatchCols, "cols", 60, "Text width for --ascii")
	watchCmd.Flags().IntVar(&flagWatchAdd, "add", 0, "Ask the server to add this many balls first")
}

func runWatch(_ *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := stream.Dial(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()
	go func() {
		<-ctx.Done()
		client.Close()
	}()

	if flagWatchAdd > 0 {
		actions := make([]core.Action, flagWatchAdd)
		for i := range actions {
			actions[i] = core.ActionAddBall
		}
		if err := client.Send(actions...); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	var last stream.Frame
	for n := 0; flagWatchFrames <= 0 || n < flagWatchFrames; n++ {
		f, err := client.Next()
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("frame %6d  count %03d  %dx%d\n", n+1, f.Count, f.Width, f.Height)
		last = f
	}

	if flagWatchASCII && last.Width > 0 {
		w, h := int(last.Width), int(last.Height)
		screen := core.NewScreen(flagWatchCols, core.Max(flagWatchCols*h/w/2, 1))
		tui.DrawCanvas(screen, last.Pixels, w, h)
		fmt.Println(screen.String())
	}
}
