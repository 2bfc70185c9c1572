package session

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client wraps one live room connection. A client may exist before its
// peer has joined; the participant association is filled in by the join
// event and read back at disconnect time.
type Client struct {
	Conn *websocket.Conn

	mu   sync.Mutex
	hook func(v any) error

	participantID   string
	participantName string
}

func NewClient(conn *websocket.Conn) *Client { return &Client{Conn: conn} }

// SetSendHook replaces the default WebSocket sender (used in tests).
func (c *Client) SetSendHook(fn func(v any) error) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

func (c *Client) Send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		return c.hook(v)
	}
	if c.Conn == nil {
		return nil
	}
	return c.Conn.WriteJSON(v)
}

// SetParticipant records which participant this connection speaks for.
func (c *Client) SetParticipant(id, name string) {
	c.mu.Lock()
	c.participantID = id
	c.participantName = name
	c.mu.Unlock()
}

// Participant reports the associated participant, ok=false before any join.
func (c *Client) Participant() (id, name string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.participantID, c.participantName, c.participantID != ""
}
