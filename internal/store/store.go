package store

import (
	"context"
	"errors"
	"math/rand"

	"codeinterview/internal/models"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrIDSpaceExhausted is returned when id generation keeps colliding;
	// with a 36^6 id space this is effectively unreachable.
	ErrIDSpaceExhausted = errors.New("room id space exhausted")
)

// RoomStore is the persistence boundary for room records. Implementations
// must apply each mutation atomically; concurrent writers resolve by
// arrival order (last write wins).
type RoomStore interface {
	CreateRoom(ctx context.Context, language models.Language) (models.Room, error)
	GetRoom(ctx context.Context, id string) (models.Room, error)
	SetCode(ctx context.Context, id, code string) (models.Room, error)
	// SetTask always replaces the task body; the title is updated only
	// when non-nil.
	SetTask(ctx context.Context, id, task string, title *string) (models.Room, error)
	SetLanguage(ctx context.Context, id string, language models.Language) (models.Room, error)
}

const (
	idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6

	// maxIDAttempts bounds collision-checked regeneration.
	maxIDAttempts = 100
)

func newRoomID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}
