package dto_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/dcc-platform/healthgate/internal/adapters/http/dto"
	"github.com/dcc-platform/healthgate/internal/domain/health"
)

func TestNewLivenessResponse(t *testing.T) {
	t.Parallel()

	resp := dto.NewLivenessResponse(90 * time.Second)

	if resp.Status != "up" {
		t.Errorf("Status = %q, want \"up\"", resp.Status)
	}
	if resp.UptimeSeconds != 90.0 {
		t.Errorf("UptimeSeconds = %v, want 90.0", resp.UptimeSeconds)
	}
}

func TestNewLivenessResponse_FractionalSeconds(t *testing.T) {
	t.Parallel()

	resp := dto.NewLivenessResponse(1500 * time.Millisecond)

	if resp.UptimeSeconds != 1.5 {
		t.Errorf("UptimeSeconds = %v, want 1.5", resp.UptimeSeconds)
	}
}

func TestNewReadinessResponse_Ready(t *testing.T) {
	t.Parallel()

	report := health.NewReport(map[string]health.Outcome{
		"database": health.Healthy(),
	})
	resp := dto.NewReadinessResponse(report)

	if resp.Status != "ready" {
		t.Errorf("Status = %q, want \"ready\"", resp.Status)
	}
	if resp.Checks["database"] != "healthy" {
		t.Errorf("Checks[database] = %q, want \"healthy\"", resp.Checks["database"])
	}
	if resp.Error != "" {
		t.Errorf("Error = %q, want empty for ready report", resp.Error)
	}

	// The error field must be absent, not null or empty, when ready.
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshalling response: %v", err)
	}
	if strings.Contains(string(raw), `"error"`) {
		t.Errorf("serialized ready response contains error field: %s", raw)
	}
}

func TestNewReadinessResponse_Unhealthy(t *testing.T) {
	t.Parallel()

	report := health.NewReport(map[string]health.Outcome{
		"database": health.Healthy(),
		"api":      health.Unhealthy(503),
	})
	resp := dto.NewReadinessResponse(report)

	if resp.Status != "unhealthy" {
		t.Errorf("Status = %q, want \"unhealthy\"", resp.Status)
	}
	if resp.Error != health.UnavailableMessage {
		t.Errorf("Error = %q, want %q", resp.Error, health.UnavailableMessage)
	}
	if resp.Checks["api"] != "unhealthy (status: 503)" {
		t.Errorf("Checks[api] = %q, want \"unhealthy (status: 503)\"", resp.Checks["api"])
	}
}

func TestNewStartupResponse_Format(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, 1, 15, 10, 30, 0, 123456789, time.UTC)
	resp := dto.NewStartupResponse(instant)

	if resp.Status != "started" {
		t.Errorf("Status = %q, want \"started\"", resp.Status)
	}
	if resp.Timestamp != "2026-01-15T10:30:00.123456+00:00" {
		t.Errorf("Timestamp = %q, want \"2026-01-15T10:30:00.123456+00:00\"", resp.Timestamp)
	}
}

func TestNewStartupResponse_NormalizesToUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("CET", 3600)
	instant := time.Date(2026, 1, 15, 11, 30, 0, 0, loc)
	resp := dto.NewStartupResponse(instant)

	wantPattern := regexp.MustCompile(`^2026-01-15T10:30:00\.\d{6}\+00:00$`)
	if !wantPattern.MatchString(resp.Timestamp) {
		t.Errorf("Timestamp = %q, want UTC-normalized with microsecond precision", resp.Timestamp)
	}
}
