package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"collabpad/internal/metrics"
	"collabpad/internal/models"
	"collabpad/internal/store"
)

// Room holds the authoritative code and connected clients for one active
// room. The code cache lives only as long as the room has members; the store
// is the durable owner.
type Room struct {
	ID string

	mu      sync.Mutex
	clients map[*Client]struct{}
	code    string

	store store.RoomStore
	log   *zap.Logger
}

func newRoom(id, code string, st store.RoomStore, log *zap.Logger) *Room {
	return &Room{
		ID:      id,
		clients: make(map[*Client]struct{}),
		code:    code,
		store:   st,
		log:     log,
	}
}

func (r *Room) join(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients[c] = struct{}{}
	// The snapshot is enqueued under the room lock, so no concurrent edit can
	// reach this client before its baseline.
	c.Send(models.InitFrame(r.code))
}

func (r *Room) leave(c *Client) int {
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

// Snapshot returns the current authoritative code.
func (r *Room) Snapshot() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// ApplyEdit replaces the document, writes it through to the store and fans
// the update out to every member, including the sender. Last write wins. The
// room lock makes replace+persist+broadcast one unit, so edits from different
// sessions are serialized and the persisted value always matches the cache.
func (r *Room) ApplyEdit(ctx context.Context, code string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.code = code
	if err := r.store.Set(ctx, r.ID, code); err != nil {
		// Live collaboration continues on in-memory state.
		r.log.Error("persist edit", zap.String("roomId", r.ID), zap.Error(err))
	}
	r.broadcast(models.CodeUpdateFrame(code))
	metrics.EditsApplied.Inc()
}

// BroadcastCursor relays a cursor position to every member, including the
// sender. Cursor traffic is ephemeral and never persisted.
func (r *Room) BroadcastCursor(clientID string, line, column int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcast(models.CursorFrame(clientID, line, column))
}

// broadcast enqueues a frame to every member. Callers hold r.mu. A member
// with a full outbound queue misses the frame; delivery to the rest is never
// delayed.
func (r *Room) broadcast(frame models.WSFrame) {
	for c := range r.clients {
		if !c.Send(frame) {
			metrics.FramesDropped.Inc()
		}
	}
}
