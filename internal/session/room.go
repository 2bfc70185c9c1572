package session

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"codeinterview/internal/models"
)

// Room holds the live side of one room: its connections, its participant
// roster, and the guest-name counter. Room record state (code, task,
// language) lives in the store; mutations of it are serialized through
// Update so every event for a room applies under one critical section.
type Room struct {
	ID string

	mu       sync.Mutex
	clients  map[*Client]struct{}
	roster   []models.Participant
	guestSeq int
}

func NewRoom(id string) *Room {
	return &Room{
		ID:      id,
		clients: make(map[*Client]struct{}),
	}
}

func (r *Room) Join(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
}

// Leave removes a connection; removing an absent one is a no-op.
func (r *Room) Leave(c *Client) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
	return len(r.clients)
}

func (r *Room) ClientCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Update runs fn while holding the room's critical section. The store
// call for a mutating event happens inside fn so that persistence is
// serialized with the mutation; fan-out must happen after Update returns.
func (r *Room) Update(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn()
}

// AddParticipant appends to the roster. An empty requested name, or one
// matching the reserved placeholder case-insensitively, is replaced with
// Guest<N> from the room's monotonic counter. Numbers are never reused,
// even after the guest leaves.
func (r *Room) AddParticipant(requestedName, placeholder string) models.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := requestedName
	if name == "" || strings.EqualFold(name, placeholder) {
		r.guestSeq++
		name = fmt.Sprintf("Guest%d", r.guestSeq)
	}
	p := models.Participant{
		ID:       uuid.NewString(),
		Name:     name,
		IsOnline: true,
	}
	r.roster = append(r.roster, p)
	return p
}

// RemoveParticipant reports whether the id was present; a miss is not an
// error because disconnects race with already-finished cleanup.
func (r *Room) RemoveParticipant(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.roster {
		if p.ID == id {
			r.roster = append(r.roster[:i], r.roster[i+1:]...)
			return true
		}
	}
	return false
}

// Participants returns a snapshot of the roster in join order.
func (r *Room) Participants() []models.Participant {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Participant, len(r.roster))
	copy(out, r.roster)
	return out
}

// Broadcast delivers frame to every connection except sender. Membership
// is snapshotted under the lock and delivery runs after it is released,
// so a slow peer never stalls the room. Per-recipient failures are
// swallowed; the read loop of a dead peer notices on its own.
func (r *Room) Broadcast(sender *Client, frame any) {
	for _, c := range r.snapshot(sender) {
		_ = c.Send(frame)
	}
}

// BroadcastAll delivers frame to every connection, sender included.
func (r *Room) BroadcastAll(frame any) {
	r.Broadcast(nil, frame)
}

func (r *Room) snapshot(exclude *Client) []*Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		if c == exclude {
			continue
		}
		out = append(out, c)
	}
	return out
}
