package httpapi

import (
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans chat messages out to the websocket clients watching each
// session. Purely in-process; cross-device delivery rides on the
// reconciliation passes, the hub only makes the local feed live.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*websocket.Conn]bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

// Join registers a connection with a session's room
func (h *Hub) Join(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		room = make(map[*websocket.Conn]bool)
		h.rooms[sessionID] = room
	}
	room[conn] = true
}

// Leave removes a connection from a session's room
func (h *Hub) Leave(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		return
	}
	delete(room, conn)
	if len(room) == 0 {
		delete(h.rooms, sessionID)
	}
}

// WriteTo sends a message to a single connection. All socket writes go
// through the hub's lock so a broadcast never interleaves with a direct
// reply on the same connection.
func (h *Hub) WriteTo(conn *websocket.Conn, message any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return conn.WriteJSON(message)
}

// Broadcast sends a message to every connection in a session's room. A
// connection that fails to take the write is dropped from the room.
func (h *Hub) Broadcast(sessionID string, message any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		return
	}

	for conn := range room {
		if err := conn.WriteJSON(message); err != nil {
			zap.S().Debugw("dropping chat client", "session_id", sessionID, "error", err)
			conn.Close()
			delete(room, conn)
		}
	}
}
