package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/ball-chamber/internal/core"
	"github.com/vovakirdan/ball-chamber/internal/sim"
)

// Config holds stream server settings.
type Config struct {
	Address    string // host:port to listen on
	FPS        int    // Frames broadcast per second
	MaxClients int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address:    ":8080",
		FPS:        30,
		MaxClients: 100,
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server steps one driver and streams its frames. The driver is only ever
// touched by the goroutine running Run; clients send actions through a
// channel.
type Server struct {
	cfg     Config
	driver  *sim.Driver
	hub     *Hub
	actions chan core.Action
	logger  *log.Logger
}

// NewServer creates a stream server for driver.
func NewServer(cfg Config, driver *sim.Driver, logger *log.Logger) (*Server, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("stream: fps must be positive, got %d", cfg.FPS)
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = DefaultConfig().MaxClients
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Server{
		cfg:     cfg,
		driver:  driver,
		hub:     NewHub(cfg.MaxClients, logger),
		actions: make(chan core.Action, 64),
		logger:  logger,
	}, nil
}

// Hub returns the client hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP handler serving the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.wsHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d clients\n", s.hub.Len())
	})
	return mux
}

// wsHandler upgrades a connection, streams frames to it and reads actions.
// Every binary message from a client is a sequence of action codes.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "error", err)
		return
	}

	c := s.hub.add(conn)
	if c == nil {
		s.logger.Warn("max clients reached", "remote", r.RemoteAddr)
		conn.Close()
		return
	}
	s.logger.Info("client connected", "remote", r.RemoteAddr, "clients", s.hub.Len())

	go s.hub.writePump(c)

	defer func() {
		s.hub.remove(c)
		conn.Close()
		s.logger.Info("client disconnected", "remote", r.RemoteAddr)
	}()

	for {
		mt, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		for _, b := range msg {
			a := core.Action(b)
			if a == core.ActionNone || a == core.ActionQuit {
				continue
			}
			select {
			case s.actions <- a:
			default:
				s.logger.Debug("action queue full", "action", a)
			}
		}
	}
}

// Run steps the driver and broadcasts a frame at the configured rate until
// ctx is done.
func (s *Server) Run(ctx context.Context) {
	interval := time.Second / time.Duration(s.cfg.FPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.frame(now.Sub(start).Seconds())
		}
	}
}

// frame applies pending actions, catches the simulation up to elapsed
// seconds, and broadcasts the rendered canvas.
func (s *Server) frame(elapsed float64) {
	in := core.NewInputFrame()
drain:
	for {
		select {
		case a := <-s.actions:
			in.Set(a)
		default:
			break drain
		}
	}
	if len(in.Actions) > 0 {
		s.driver.Apply(in)
	}

	s.driver.StepUntil(elapsed)

	cfg := s.driver.Config()
	pix := s.driver.Render()
	stats := s.driver.Stats()

	msg := EncodeFrame(make([]byte, 0, HeaderSize+len(pix)*4), cfg.CanvasW, cfg.CanvasH, stats.NumBalls, pix)
	s.hub.Broadcast(msg)
}

// ListenAndServe serves the websocket endpoint and runs the frame loop until
// ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting stream server", "address", s.cfg.Address, "fps", s.cfg.FPS)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("stream: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return httpServer.Shutdown(shutdownCtx)
}
