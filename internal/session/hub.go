package session

import (
	"sync"

	"codeinterview/internal/models"
)

// Hub manages the live room sessions. Sessions are kept for the life of
// the process even when their last connection leaves, so the guest
// counter for a room id stays monotonic across reconnect waves.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

func NewHub() *Hub { return &Hub{rooms: make(map[string]*Room)} }

func (h *Hub) GetOrCreate(id string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[id]; ok {
		return r
	}
	r := NewRoom(id)
	h.rooms[id] = r
	return r
}

func (h *Hub) Get(id string) (*Room, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	r, ok := h.rooms[id]
	return r, ok
}

// Participants returns the roster for a room id, empty when the room has
// never had a live session.
func (h *Hub) Participants(id string) []models.Participant {
	h.mu.RLock()
	r, ok := h.rooms[id]
	h.mu.RUnlock()
	if !ok {
		return []models.Participant{}
	}
	return r.Participants()
}
