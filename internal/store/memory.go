package store

import (
	"context"
	"sync"
	"time"

	"codeinterview/internal/models"
)

// Memory is the in-process RoomStore backing a single-instance deployment.
type Memory struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
}

func NewMemory() *Memory { return &Memory{rooms: make(map[string]models.Room)} }

func (m *Memory) CreateRoom(_ context.Context, language models.Language) (models.Room, error) {
	if !language.Valid() {
		return models.Room{}, ErrInvalidLanguage
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var id string
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			return models.Room{}, ErrIDSpaceExhausted
		}
		id = newRoomID()
		if _, taken := m.rooms[id]; !taken {
			break
		}
	}

	room := models.Room{
		ID:        id,
		Code:      models.Template(language),
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
	m.rooms[id] = room
	return room, nil
}

func (m *Memory) GetRoom(_ context.Context, id string) (models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	room, ok := m.rooms[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	return room, nil
}

func (m *Memory) SetCode(_ context.Context, id, code string) (models.Room, error) {
	return m.update(id, func(r *models.Room) error {
		r.Code = code
		return nil
	})
}

func (m *Memory) SetTask(_ context.Context, id, task string, title *string) (models.Room, error) {
	return m.update(id, func(r *models.Room) error {
		r.Task = task
		if title != nil {
			r.TaskTitle = *title
		}
		return nil
	})
}

func (m *Memory) SetLanguage(_ context.Context, id string, language models.Language) (models.Room, error) {
	if !language.Valid() {
		return models.Room{}, ErrInvalidLanguage
	}
	// Switching language leaves the existing code untouched.
	return m.update(id, func(r *models.Room) error {
		r.Language = language
		return nil
	})
}

func (m *Memory) update(id string, fn func(*models.Room) error) (models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	room, ok := m.rooms[id]
	if !ok {
		return models.Room{}, ErrNotFound
	}
	if err := fn(&room); err != nil {
		return models.Room{}, err
	}
	m.rooms[id] = room
	return room, nil
}
