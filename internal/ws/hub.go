package ws

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// writeTimeout bounds every outbound frame; a client that cannot drain its
// socket in time is dropped rather than stalling the broadcast.
const writeTimeout = 3 * time.Second

// Hub tracks the connected viewer sockets and fans generated-room patches
// out to all of them.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Send writes one message to a single connection, for the initial snapshot
// a client receives on connect.
func (h *Hub) Send(conn *websocket.Conn, message []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, message)
}

// Broadcast writes one message to every connection, evicting any client
// whose write fails.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	h.mu.Unlock()
}
