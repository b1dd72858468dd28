package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"collabpad/internal/models"
)

// MemoryStore keeps rooms in a process-local map. Used in tests and for
// single-node development runs where durability does not matter.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rooms: make(map[string]models.Room)}
}

func (s *MemoryStore) Create(_ context.Context) (models.Room, error) {
	now := time.Now()
	room := models.Room{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}

	s.mu.Lock()
	s.rooms[room.ID] = room
	s.mu.Unlock()
	return room, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.rooms[id]
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return room, nil
}

func (s *MemoryStore) Set(_ context.Context, id, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.rooms[id]
	if !ok {
		return ErrRoomNotFound
	}
	room.Code = code
	room.UpdatedAt = time.Now()
	s.rooms[id] = room
	return nil
}
