package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collabpad_active_rooms",
		Help: "Rooms with at least one connected client.",
	})

	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "collabpad_connected_clients",
		Help: "Currently connected websocket clients.",
	})

	EditsApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collabpad_edits_applied_total",
		Help: "Document updates applied and fanned out.",
	})

	FramesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collabpad_frames_dropped_total",
		Help: "Frames dropped because a client's outbound queue was full.",
	})
)
