package spectate

import (
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Read-only viewers, any origin
	},
}

// Hub fans game snapshots out to WebSocket viewers. Viewers never send
// input; anything they write is read and discarded.
type Hub struct {
	logger *log.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	latest  any
	closed  bool
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Hub{
		logger:  logger,
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the viewer. The most recent
// broadcast is sent right away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("spectate: upgrade failed: %v", err)
		return
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[conn] = struct{}{}
	if h.latest != nil {
		if err := h.write(conn, h.latest); err != nil {
			h.dropLocked(conn)
			h.mu.Unlock()
			return
		}
	}
	h.mu.Unlock()
	h.logger.Printf("spectate: viewer %s connected", r.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	h.dropLocked(conn)
	h.mu.Unlock()
	h.logger.Printf("spectate: viewer %s left", r.RemoteAddr)
}

// Broadcast sends v as JSON to every viewer, dropping those that fail.
func (h *Hub) Broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.latest = v
	for conn := range h.clients {
		if err := h.write(conn, v); err != nil {
			h.logger.Printf("spectate: dropping viewer: %v", err)
			h.dropLocked(conn)
		}
	}
}

// Viewers returns the number of connected viewers.
func (h *Hub) Viewers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer. Later broadcasts are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "game over"),
			time.Now().Add(writeWait))
		h.dropLocked(conn)
	}
}

// write must be called with mu held; a conn supports one writer at a time.
func (h *Hub) write(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}

func (h *Hub) dropLocked(conn *websocket.Conn) {
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
	}
}
