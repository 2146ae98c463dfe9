package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-chamber/internal/stream"
)

var (
	flagStreamAddr string
	flagStreamFPS  int
	flagMaxClients int
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream chamber frames to websocket clients",
	Long: `Run one chamber and broadcast every rendered frame over a websocket.

Clients connect to /ws and receive binary frames:
  uint32 width, uint32 height, uint8 count, then width*height
  uint32 pixels, all little endian.
Binary messages from clients are read as action codes
(1 add ball, 2 remove ball, 5 respawn, 6 pause).

Examples:
  chamber stream
  chamber stream --addr :9000 --fps 60`,
	Run: runStream,
}

func init() {
	streamCmd.Flags().StringVar(&flagStreamAddr, "addr", "", "Listen address (default from config)")
	streamCmd.Flags().IntVar(&flagStreamFPS, "fps", 0, "Frames per second (default from config)")
	streamCmd.Flags().IntVar(&flagMaxClients, "max-clients", stream.DefaultConfig().MaxClients, "Maximum connected clients")
}

func runStream(_ *cobra.Command, _ []string) {
	cfg := mustConfig()
	if flagStreamAddr != "" {
		cfg.Stream.Address = flagStreamAddr
	}
	if flagStreamFPS > 0 {
		cfg.Stream.FPS = flagStreamFPS
	}

	logger := newLogger(cfg, "chamber-stream")

	driver, err := newDriver(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv, err := stream.NewServer(stream.Config{
		Address:    cfg.Stream.Address,
		FPS:        cfg.Stream.FPS,
		MaxClients: flagMaxClients,
	}, driver, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
