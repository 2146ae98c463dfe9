package stream

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/ball-chamber/internal/core"
)

// Client is one websocket connection to a stream server.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a stream endpoint such as ws://localhost:8080/ws.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("stream: dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Next blocks until the next frame arrives. Text messages are skipped.
func (c *Client) Next() (Frame, error) {
	for {
		mt, msg, err := c.conn.ReadMessage()
		if err != nil {
			return Frame{}, fmt.Errorf("stream: read frame: %w", err)
		}
		if mt != websocket.BinaryMessage {
			continue
		}
		return DecodeFrame(msg)
	}
}

// Send asks the server to apply actions on its next frame.
func (c *Client) Send(actions ...core.Action) error {
	msg := make([]byte, len(actions))
	for i, a := range actions {
		msg[i] = byte(a)
	}
	if err := c.conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
		return fmt.Errorf("stream: send actions: %w", err)
	}
	return nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
