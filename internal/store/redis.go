package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"collabpad/internal/models"
)

// RedisStore keeps each room in a hash under "room:<id>".
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{rdb: redis.NewClient(&redis.Options{Addr: addr})}
}

func roomKey(id string) string { return "room:" + id }

func (s *RedisStore) Create(ctx context.Context) (models.Room, error) {
	now := time.Now()
	room := models.Room{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}

	err := s.rdb.HSet(ctx, roomKey(room.ID), map[string]interface{}{
		"code":      "",
		"createdAt": now.Format(time.RFC3339Nano),
		"updatedAt": now.Format(time.RFC3339Nano),
	}).Err()
	if err != nil {
		return models.Room{}, fmt.Errorf("create room in redis: %w", err)
	}
	return room, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Room, error) {
	vals, err := s.rdb.HGetAll(ctx, roomKey(id)).Result()
	if err != nil {
		return models.Room{}, fmt.Errorf("get room from redis: %w", err)
	}
	if len(vals) == 0 {
		return models.Room{}, ErrRoomNotFound
	}

	room := models.Room{ID: id, Code: vals["code"]}
	room.CreatedAt, _ = time.Parse(time.RFC3339Nano, vals["createdAt"])
	room.UpdatedAt, _ = time.Parse(time.RFC3339Nano, vals["updatedAt"])
	return room, nil
}

func (s *RedisStore) Set(ctx context.Context, id, code string) error {
	exists, err := s.rdb.Exists(ctx, roomKey(id)).Result()
	if err != nil {
		return fmt.Errorf("check room in redis: %w", err)
	}
	if exists == 0 {
		return ErrRoomNotFound
	}

	err = s.rdb.HSet(ctx, roomKey(id), map[string]interface{}{
		"code":      code,
		"updatedAt": time.Now().Format(time.RFC3339Nano),
	}).Err()
	if err != nil {
		return fmt.Errorf("update room in redis: %w", err)
	}
	return nil
}
