package routers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"collabpad/internal/api"
	"collabpad/internal/store"
)

func New(log *zap.Logger, st store.RoomStore) http.Handler {
	return NewWithHandlers(api.NewHandlers(log, st))
}

// NewWithHandlers builds the route table around preconstructed handlers
// (used in tests that need to reach into the hub).
func NewWithHandlers(h *api.Handlers) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/v1/rooms", h.CreateRoom)
	r.Get("/api/v1/rooms/{roomId}", h.GetRoom)
	r.Post("/api/v1/autocomplete", h.Autocomplete)

	r.Get("/ws/{roomId}", h.CollabWS)

	return r
}
