// SPDX-License-Identifier: MIT
package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/thatcatcamp/twtheme/internal/metrics"
)

// connWithMutex wraps a WebSocket connection with its own mutex for thread-safe writes.
type connWithMutex struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub tracks live reload sockets and broadcasts theme updates to them.
type Hub struct {
	mu          sync.RWMutex
	connections map[*websocket.Conn]*connWithMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		connections: make(map[*websocket.Conn]*connWithMutex),
	}
}

// Add registers a connection.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[conn] = &connWithMutex{conn: conn}
	metrics.LiveReloadClients.Set(float64(len(h.connections)))
}

// Remove forgets a connection.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.connections, conn)
	metrics.LiveReloadClients.Set(float64(len(h.connections)))
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// Broadcast sends message to every client. Clients that fail the write are dropped.
func (h *Hub) Broadcast(message interface{}) {
	h.mu.RLock()
	conns := make([]*connWithMutex, 0, len(h.connections))
	for _, cwm := range h.connections {
		conns = append(conns, cwm)
	}
	h.mu.RUnlock()

	// write without holding the hub lock
	for _, cwm := range conns {
		cwm.mu.Lock()
		err := cwm.conn.WriteJSON(message)
		cwm.mu.Unlock()

		if err != nil {
			h.Remove(cwm.conn)
			cwm.conn.Close()
		}
	}
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.connections {
		conn.Close()
		delete(h.connections, conn)
	}
	metrics.LiveReloadClients.Set(0)
}
