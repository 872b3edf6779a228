package websocket

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Hub tracks all connected copilot clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[uuid.UUID]*Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uuid.UUID]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Close a duplicate connection for the same client ID first.
	if old, ok := h.clients[c.ID]; ok && old != c {
		old.Close()
	}
	h.clients[c.ID] = c
	log.Debug().Str("clientId", c.ID.String()).Int("clients", len(h.clients)).Msg("copilot client connected")
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if current, ok := h.clients[c.ID]; ok && current == c {
		delete(h.clients, c.ID)
	}
	log.Debug().Str("clientId", c.ID.String()).Int("clients", len(h.clients)).Msg("copilot client disconnected")
}

// Broadcast queues a message for every connected client. Clients with a
// full send buffer are skipped rather than blocking the caller.
func (h *Hub) Broadcast(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- message:
		default:
		}
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
