package healthcheck

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheckHandler(t *testing.T) {
	tests := []struct {
		name   string
		pinger Pinger
		status int
		body   string
	}{
		{"no database", nil, http.StatusOK, "OK"},
		{"healthy", pingFunc(func(context.Context) error { return nil }), http.StatusOK, "OK"},
		{"down", pingFunc(func(context.Context) error { return errors.New("connection refused") }), http.StatusServiceUnavailable, "database unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthCheckHandler(tt.pinger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			if rec.Code != tt.status || rec.Body.String() != tt.body {
				t.Errorf("got %d %q, want %d %q", rec.Code, rec.Body.String(), tt.status, tt.body)
			}
		})
	}
}
