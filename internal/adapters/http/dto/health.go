package dto

import (
	"time"

	"github.com/dcc-platform/healthgate/internal/domain/health"
)

// startupTimestampLayout formats startup timestamps with microsecond
// precision and an explicit UTC offset, e.g. "2026-01-15T09:30:00.123456+00:00".
const startupTimestampLayout = "2006-01-02T15:04:05.000000-07:00"

// LivenessResponse is the body of GET /health/liveness.
type LivenessResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewLivenessResponse builds a liveness body from the process uptime.
func NewLivenessResponse(uptime time.Duration) LivenessResponse {
	return LivenessResponse{
		Status:        "up",
		UptimeSeconds: uptime.Seconds(),
	}
}

// ReadinessResponse is the body of GET /health/readiness. Error is present
// only when the aggregate status is unhealthy.
type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
	Error  string            `json:"error,omitempty"`
}

// NewReadinessResponse converts an aggregated readiness report into its wire
// representation.
func NewReadinessResponse(report health.Report) ReadinessResponse {
	return ReadinessResponse{
		Status: report.Status.String(),
		Checks: report.Checks,
		Error:  report.Error,
	}
}

// StartupResponse is the body of GET /health/startup.
type StartupResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewStartupResponse builds a startup body stamped with the given instant,
// normalized to UTC.
func NewStartupResponse(now time.Time) StartupResponse {
	return StartupResponse{
		Status:    "started",
		Timestamp: now.UTC().Format(startupTimestampLayout),
	}
}
