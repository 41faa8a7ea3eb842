// Package spectate streams read-only game snapshots to websocket viewers.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/hersh/blockdrop/internal/game"
	"github.com/hersh/blockdrop/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type viewer struct {
	id     string
	conn   *websocket.Conn
	sendCh chan []byte
}

// writePump sends messages from sendCh to the websocket.
func (v *viewer) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		v.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-v.sendCh:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				v.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := v.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			v.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// send queues data, dropping it if the viewer is falling behind.
func (v *viewer) send(data []byte) {
	select {
	case v.sendCh <- data:
	default:
		slog.Debug("viewer behind, dropping frame", "viewer", v.id)
	}
}

// Hub fans snapshots out to every connected viewer.
type Hub struct {
	mu      sync.RWMutex
	viewers map[string]*viewer
	latest  []byte
	closed  bool
}

func NewHub() *Hub {
	return &Hub{
		viewers: make(map[string]*viewer),
	}
}

// Handler serves the websocket endpoint at /ws and a health check at /health.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Publish sends s to all viewers and keeps it for viewers that join later.
func (h *Hub) Publish(s game.Snapshot) {
	data, err := json.Marshal(protocol.Envelope{
		Type:    protocol.MsgSnapshot,
		Payload: protocol.NewSnapshotPayload(s),
	})
	if err != nil {
		slog.Error("marshal snapshot", "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for _, v := range h.viewers {
		v.send(data)
	}
}

// Count returns the number of connected viewers.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// ServeWS upgrades a viewer connection and blocks until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("upgrade error", "err", err)
		return
	}

	v := &viewer{
		id:     uuid.NewString(),
		conn:   conn,
		sendCh: make(chan []byte, sendBuffer),
	}
	if !h.add(v) {
		conn.Close()
		return
	}
	slog.Info("viewer connected", "viewer", v.id, "remote", r.RemoteAddr, "viewers", h.Count())

	go v.writePump()
	h.readPump(v)

	h.remove(v.id)
	slog.Info("viewer disconnected", "viewer", v.id)
}

func (h *Hub) add(v *viewer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.viewers[v.id] = v

	hello, err := json.Marshal(protocol.Envelope{
		Type:    protocol.MsgAssignID,
		Payload: protocol.AssignIDPayload{ViewerID: v.id},
	})
	if err == nil {
		v.send(hello)
	}
	if h.latest != nil {
		v.send(h.latest)
	}
	return true
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if v, ok := h.viewers[id]; ok {
		close(v.sendCh)
		delete(h.viewers, id)
	}
}

// readPump keeps the read deadline fresh. Viewers are read-only, so any
// payload they send is discarded.
func (h *Hub) readPump(v *viewer) {
	defer v.conn.Close()

	v.conn.SetReadLimit(maxMessageSize)
	v.conn.SetReadDeadline(time.Now().Add(pongWait))
	v.conn.SetPongHandler(func(string) error {
		v.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("read error", "viewer", v.id, "err", err)
			}
			return
		}
	}
}

// Close disconnects every viewer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, v := range h.viewers {
		close(v.sendCh)
		delete(h.viewers, id)
	}
}

// Serve listens on addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("spectator server starting", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectator server: %w", err)
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectator shutdown: %w", err)
	}
	return nil
}
