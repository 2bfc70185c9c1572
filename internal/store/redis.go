package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codeinterview/internal/models"
)

// roomTTL keeps abandoned rooms from accumulating; every write refreshes it.
const roomTTL = 24 * time.Hour

// Redis stores each room as a hash under room:<id>, shared across instances.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis { return &Redis{rdb: rdb} }

func roomKey(id string) string { return "room:" + id }

func (s *Redis) CreateRoom(ctx context.Context, language models.Language) (models.Room, error) {
	if !language.Valid() {
		return models.Room{}, ErrInvalidLanguage
	}

	var id string
	for attempt := 0; ; attempt++ {
		if attempt == maxIDAttempts {
			return models.Room{}, ErrIDSpaceExhausted
		}
		id = newRoomID()
		// HSetNX on the id field doubles as the collision check.
		claimed, err := s.rdb.HSetNX(ctx, roomKey(id), "id", id).Result()
		if err != nil {
			return models.Room{}, fmt.Errorf("failed to claim room id: %w", err)
		}
		if claimed {
			break
		}
	}

	room := models.Room{
		ID:        id,
		Code:      models.Template(language),
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.write(ctx, room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *Redis) GetRoom(ctx context.Context, id string) (models.Room, error) {
	fields, err := s.rdb.HGetAll(ctx, roomKey(id)).Result()
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to get room from redis: %w", err)
	}
	if len(fields) == 0 {
		return models.Room{}, ErrNotFound
	}

	createdAt, err := time.Parse(time.RFC3339Nano, fields["createdAt"])
	if err != nil {
		return models.Room{}, fmt.Errorf("failed to parse room createdAt: %w", err)
	}
	return models.Room{
		ID:        fields["id"],
		Code:      fields["code"],
		Language:  models.Language(fields["language"]),
		Task:      fields["task"],
		TaskTitle: fields["taskTitle"],
		CreatedAt: createdAt,
	}, nil
}

func (s *Redis) SetCode(ctx context.Context, id, code string) (models.Room, error) {
	return s.update(ctx, id, func(r *models.Room) {
		r.Code = code
	})
}

func (s *Redis) SetTask(ctx context.Context, id, task string, title *string) (models.Room, error) {
	return s.update(ctx, id, func(r *models.Room) {
		r.Task = task
		if title != nil {
			r.TaskTitle = *title
		}
	})
}

func (s *Redis) SetLanguage(ctx context.Context, id string, language models.Language) (models.Room, error) {
	if !language.Valid() {
		return models.Room{}, ErrInvalidLanguage
	}
	return s.update(ctx, id, func(r *models.Room) {
		r.Language = language
	})
}

func (s *Redis) update(ctx context.Context, id string, fn func(*models.Room)) (models.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return models.Room{}, err
	}
	fn(&room)
	if err := s.write(ctx, room); err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *Redis) write(ctx context.Context, room models.Room) error {
	key := roomKey(room.ID)
	err := s.rdb.HSet(ctx, key, map[string]interface{}{
		"id":        room.ID,
		"code":      room.Code,
		"language":  string(room.Language),
		"task":      room.Task,
		"taskTitle": room.TaskTitle,
		"createdAt": room.CreatedAt.Format(time.RFC3339Nano),
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to write room to redis: %w", err)
	}
	s.rdb.Expire(ctx, key, roomTTL)
	return nil
}
