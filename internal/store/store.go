package store

import (
	"context"
	"errors"
	"fmt"

	"collabpad/internal/models"
)

// ErrRoomNotFound is returned by Get and Set when no room exists for the id.
var ErrRoomNotFound = errors.New("room not found")

// RoomStore is the durable keyed storage for room text. The realtime hub only
// depends on Get (seeding a room on first join) and Set (write-through on
// edits); Create is used by the rooms API.
type RoomStore interface {
	Create(ctx context.Context) (models.Room, error)
	Get(ctx context.Context, id string) (models.Room, error)
	Set(ctx context.Context, id, code string) error
}

// Config selects and parameterizes a backend.
type Config struct {
	Backend    string // "sqlite", "redis" or "memory"
	RedisAddr  string
	SQLitePath string
}

// New builds the store named by cfg.Backend. An empty backend defaults to
// sqlite.
func New(cfg Config) (RoomStore, error) {
	switch cfg.Backend {
	case "", "sqlite":
		return NewSQLiteStore(cfg.SQLitePath)
	case "redis":
		return NewRedisStore(cfg.RedisAddr), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
