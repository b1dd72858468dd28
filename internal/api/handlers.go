package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"collabpad/internal/autocomplete"
	"collabpad/internal/models"
	"collabpad/internal/session"
	"collabpad/internal/store"
)

type Handlers struct {
	log   *zap.Logger
	store store.RoomStore
	hub   *session.Hub
}

func NewHandlers(log *zap.Logger, st store.RoomStore) *Handlers {
	return NewHandlersWithDeps(log, st, session.NewHub(st, log))
}

// NewHandlersWithDeps injects the hub directly (used in tests).
func NewHandlersWithDeps(log *zap.Logger, st store.RoomStore, hub *session.Hub) *Handlers {
	return &Handlers{log: log, store: st, hub: hub}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

// CreateRoom makes a new empty room and returns its id.
func (h *Handlers) CreateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.Create(r.Context())
	if err != nil {
		h.log.Error("create room", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "store_error", Message: "failed to create room",
		})
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// GetRoom fetches a room's latest persisted text by id.
func (h *Handlers) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")
	if roomID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Code: "missing_room_id", Message: "room id is required",
		})
		return
	}

	room, err := h.store.Get(r.Context(), roomID)
	if errors.Is(err, store.ErrRoomNotFound) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{
			Code: "room_not_found", Message: "room not found",
		})
		return
	}
	if err != nil {
		h.log.Error("get room", zap.String("roomId", roomID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code: "store_error", Message: "failed to fetch room",
		})
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// Autocomplete returns a snippet suggestion for the word before the cursor.
func (h *Handlers) Autocomplete(w http.ResponseWriter, r *http.Request) {
	var req models.AutocompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, models.AutocompleteResponse{Suggestion: autocomplete.Suggest(req)})
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// CollabWS runs one realtime session: join the room, deliver the snapshot,
// then dispatch inbound frames until the transport drops.
func (h *Handlers) CollabWS(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomId")
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := session.NewClient(conn)
	room, err := h.hub.Join(r.Context(), roomID, client)
	if err != nil {
		if !errors.Is(err, store.ErrRoomNotFound) {
			h.log.Error("join room", zap.String("roomId", roomID), zap.Error(err))
		}
		// The only signal for an unknown room is a normal closure.
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		_ = conn.Close()
		return
	}

	// Join already enqueued the init frame; the pump delivers it first.
	go client.WritePump()
	defer func() {
		h.hub.Leave(roomID, client)
		client.Close()
	}()

	client.PrepareRead()
	for {
		frame, err := client.ReadFrame()
		if err != nil {
			return
		}

		switch frame.Type {
		case models.FrameCodeUpdate:
			code := ""
			if frame.Code != nil {
				code = *frame.Code
			}
			room.ApplyEdit(r.Context(), code)

		case models.FrameCursor:
			if frame.ClientID == nil || frame.LineNumber == nil || frame.Column == nil {
				continue // silently dropped
			}
			room.BroadcastCursor(*frame.ClientID, *frame.LineNumber, *frame.Column)

		default:
			// Unrecognized frame types are ignored for forward compatibility.
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
