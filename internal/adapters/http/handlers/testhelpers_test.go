package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dcc-platform/healthgate/internal/domain/health"
)

// checkerFunc adapts a function to the ports.ReadinessChecker interface.
type checkerFunc func(ctx context.Context) (health.Report, error)

func (f checkerFunc) Check(ctx context.Context) (health.Report, error) {
	return f(ctx)
}

// fixedUptime is a ports.UptimeSource reporting a constant uptime.
type fixedUptime struct {
	started time.Time
	uptime  time.Duration
}

func (f fixedUptime) StartedAt() time.Time  { return f.started }
func (f fixedUptime) Uptime() time.Duration { return f.uptime }

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
