package stream

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// sendBuffer is how many frames may queue for one slow client.
const sendBuffer = 3

// client is one websocket connection with its outgoing queue.
type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected clients and fans frames out to them.
type Hub struct {
	mu         sync.Mutex
	clients    map[*client]struct{}
	maxClients int
	logger     *log.Logger
}

// NewHub creates a hub that accepts up to maxClients connections.
func NewHub(maxClients int, logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]struct{}),
		maxClients: maxClients,
		logger:     logger,
	}
}

// add registers conn. Returns nil when the hub is full.
func (h *Hub) add(conn *websocket.Conn) *client {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients) >= h.maxClients {
		return nil
	}
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	h.clients[c] = struct{}{}
	return c
}

// remove unregisters c and closes its queue.
func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues msg for every client. Clients whose queue is full skip
// the frame. msg must not be modified afterwards.
func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Debug("client queue full, dropping frame", "remote", c.conn.RemoteAddr().String())
		}
	}
}

// writePump sends queued frames until the queue is closed or a write fails.
func (h *Hub) writePump(c *client) {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			h.logger.Debug("write to client failed", "error", err)
			return
		}
	}
}
