// Package netclient connects a spectator to a game's snapshot stream.
package netclient

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"
	"github.com/hersh/blockdrop/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 16384
)

// SnapshotMsg is a tea.Msg carrying the latest state of the watched game.
type SnapshotMsg struct {
	Snapshot protocol.SnapshotPayload
}

// ConnectedMsg is sent when the hub has assigned this viewer an ID.
type ConnectedMsg struct {
	ViewerID string
}

// DisconnectedMsg is sent when the WebSocket connection is lost.
type DisconnectedMsg struct {
	Err error
}

// Client manages the WebSocket connection to a game's spectator hub.
type Client struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	deliver func(tea.Msg)
	done    chan struct{}
	closed  bool
}

// New creates a Client connected to the given hub URL.
func New(serverURL string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(serverURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", serverURL, err)
	}
	return &Client{
		conn: conn,
		done: make(chan struct{}),
	}, nil
}

// SetProgram routes incoming messages to a bubbletea program.
func (c *Client) SetProgram(p *tea.Program) {
	c.SetSink(p.Send)
}

// SetSink routes incoming messages to fn.
func (c *Client) SetSink(fn func(tea.Msg)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deliver = fn
}

// Start launches the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// Close shuts down the client connection.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	c.conn.Close()
}

func (c *Client) send(msg tea.Msg) {
	c.mu.Lock()
	deliver := c.deliver
	c.mu.Unlock()
	if deliver != nil {
		deliver(msg)
	}
}

// readPump reads snapshots from the WebSocket and hands them to the sink.
func (c *Client) readPump() {
	var readErr error
	defer func() {
		c.send(DisconnectedMsg{Err: readErr})
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("readPump error", "err", err)
				readErr = err
			}
			return
		}

		var env struct {
			Type    protocol.MessageType `json:"type"`
			Payload json.RawMessage      `json:"payload"`
		}
		if err := json.Unmarshal(message, &env); err != nil {
			slog.Warn("client unmarshal error", "err", err)
			continue
		}

		switch env.Type {
		case protocol.MsgAssignID:
			var payload protocol.AssignIDPayload
			if json.Unmarshal(env.Payload, &payload) == nil {
				c.send(ConnectedMsg{ViewerID: payload.ViewerID})
			}
		case protocol.MsgSnapshot:
			var payload protocol.SnapshotPayload
			if json.Unmarshal(env.Payload, &payload) == nil {
				c.send(SnapshotMsg{Snapshot: payload})
			}
		default:
			slog.Debug("ignoring message", "type", env.Type)
		}
	}
}

// writePump keeps the connection alive with pings until the client closes.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := c.conn.WriteMessage(websocket.PingMessage, nil)
			c.mu.Unlock()
			if err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
