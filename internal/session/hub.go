package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"collabpad/internal/metrics"
	"collabpad/internal/store"
)

// Hub is the process-wide registry of active rooms. A room exists here iff it
// has at least one connected client; it is created on first join, seeded from
// the store, and dropped when its last member leaves.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]*Room

	store store.RoomStore
	log   *zap.Logger
}

func NewHub(st store.RoomStore, log *zap.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]*Room),
		store: st,
		log:   log,
	}
}

// Join places the client in the room, creating the room on first join. The
// room must exist in the store; existence is checked once, here, and never
// re-checked for the life of the session.
func (h *Hub) Join(ctx context.Context, roomID string, c *Client) (*Room, error) {
	record, err := h.store.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[roomID]
	if !ok {
		r = newRoom(roomID, record.Code, h.store, h.log)
		h.rooms[roomID] = r
		metrics.ActiveRooms.Inc()
	}
	r.join(c)
	metrics.ConnectedClients.Inc()

	h.log.Info("client joined", zap.String("roomId", roomID), zap.Int("clients", r.ClientCount()))
	return r, nil
}

// Leave removes the client from the room and drops the room when it empties.
// The cached code is discarded with it; the store already holds the last
// persisted value.
func (h *Hub) Leave(roomID string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	r, ok := h.rooms[roomID]
	if !ok {
		return
	}

	left := r.leave(c)
	metrics.ConnectedClients.Dec()
	if left == 0 {
		delete(h.rooms, roomID)
		metrics.ActiveRooms.Dec()
		h.log.Info("room drained", zap.String("roomId", roomID))
		return
	}
	h.log.Info("client left", zap.String("roomId", roomID), zap.Int("clients", left))
}

// Stats reports the number of active rooms and connected clients.
func (h *Hub) Stats() (rooms, clients int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	rooms = len(h.rooms)
	for _, r := range h.rooms {
		clients += r.ClientCount()
	}
	return rooms, clients
}
