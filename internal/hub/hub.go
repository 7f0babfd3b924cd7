package hub

import (
	"encoding/json"
	"sync"
)

// Client is a single SSE connection. The handler drains it until the hub closes it.
type Client chan []byte

// Hub tracks the open notification streams of every connected user.
// A user may hold several streams at once (one per browser tab).
type Hub struct {
	users map[uint]map[Client]bool
	mu    sync.RWMutex
	size  int
}

// NewHub creates a new Hub whose clients buffer up to size messages.
func NewHub(size int) *Hub {
	if size <= 0 {
		size = 16
	}
	return &Hub{
		users: make(map[uint]map[Client]bool),
		size:  size,
	}
}

// Subscribe registers a new stream for userID.
func (h *Hub) Subscribe(userID uint) Client {
	client := make(Client, h.size)

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.users[userID]; !ok {
		h.users[userID] = make(map[Client]bool)
	}
	h.users[userID][client] = true
	return client
}

// Unsubscribe removes the stream and closes it.
func (h *Hub) Unsubscribe(userID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.users[userID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.users, userID)
			}
		}
	}
}

// Disconnect closes every stream of userID.
func (h *Hub) Disconnect(userID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.users[userID] {
		close(client)
	}
	delete(h.users, userID)
}

// Send marshals v once and delivers it to every stream of userID.
// Slow streams drop the message instead of blocking the sender.
func (h *Hub) Send(userID uint, v any) error {
	message, err := json.Marshal(v)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.users[userID] {
		select {
		case client <- message:
		default:
		}
	}
	return nil
}

// Connected reports how many streams userID currently holds.
func (h *Hub) Connected(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.users[userID])
}
