package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"collabpad/internal/store"
)

func TestRoutes(t *testing.T) {
	router := New(zap.NewNop(), store.NewMemoryStore())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "health endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "create room endpoint",
			method:         http.MethodPost,
			path:           "/api/v1/rooms",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "get unknown room",
			method:         http.MethodGet,
			path:           "/api/v1/rooms/nope",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "autocomplete rejects empty body",
			method:         http.MethodPost,
			path:           "/api/v1/autocomplete",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "websocket endpoint rejects plain GET",
			method:         http.MethodGet,
			path:           "/ws/some-room",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/api/v1/nope",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestHealthBody(t *testing.T) {
	router := New(zap.NewNop(), store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "ok", rec.Body.String())
}
