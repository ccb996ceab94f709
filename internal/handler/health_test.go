package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/pagination/internal/handler"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func newHealthEngine(p handler.Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// nil services: only health and docs routes are exercised here
	handler.Register(r, p, nil, nil)
	return r
}

func TestHealthRoutes(t *testing.T) {
	down := stubPinger{err: errors.New("db down")}

	cases := []struct {
		name     string
		pinger   handler.Pinger
		method   string
		path     string
		wantCode int
	}{
		{"live root", stubPinger{}, http.MethodGet, "/live", http.StatusOK},
		{"ready root", stubPinger{}, http.MethodGet, "/ready", http.StatusOK},
		{"ready root down", down, http.MethodGet, "/ready", http.StatusServiceUnavailable},
		{"api live", stubPinger{}, http.MethodGet, handler.APIV1Prefix + "/health/live", http.StatusOK},
		{"api ready", stubPinger{}, http.MethodGet, handler.APIV1Prefix + "/health/ready", http.StatusOK},
		{"api ready down", down, http.MethodGet, handler.APIV1Prefix + "/health/ready", http.StatusServiceUnavailable},
		{"unknown path", stubPinger{}, http.MethodGet, "/no-such", http.StatusNotFound},
		{"openapi", stubPinger{}, http.MethodGet, "/openapi.yaml", http.StatusOK},
		{"swagger ui", stubPinger{}, http.MethodGet, "/docs", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newHealthEngine(tc.pinger)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d, body=%s", tc.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestReadiness_MethodNotAllowed(t *testing.T) {
	r := newHealthEngine(stubPinger{})
	w := httptest.NewRecorder()
	// Gin returns 404 for an unregistered method unless HandleMethodNotAllowed is set.
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/ready", nil))
	if w.Code != http.StatusNotFound && w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 404 or 405, got %d", w.Code)
	}
}
