// Package handlers contains the HTTP handlers for the health endpoints.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dcc-platform/healthgate/internal/adapters/http/dto"
	"github.com/dcc-platform/healthgate/internal/domain/health"
	"github.com/dcc-platform/healthgate/internal/platform/logging"
	"github.com/dcc-platform/healthgate/internal/ports"
)

// HealthHandler serves the liveness, readiness, and startup endpoints.
type HealthHandler struct {
	readiness ports.ReadinessChecker
	uptime    ports.UptimeSource
}

// NewHealthHandler creates a HealthHandler backed by the given readiness
// checker and uptime source.
func NewHealthHandler(readiness ports.ReadinessChecker, uptime ports.UptimeSource) *HealthHandler {
	return &HealthHandler{
		readiness: readiness,
		uptime:    uptime,
	}
}

// Liveness handles GET /health/liveness. Always returns 200 with process
// uptime; it performs no dependency probing.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewLivenessResponse(h.uptime.Uptime()))
}

// Readiness handles GET /health/readiness. All declared dependencies are
// probed concurrently; the response is 200 when every check is healthy and
// 503 otherwise, always carrying the complete per-dependency check map.
//
// When the request context is canceled before aggregation completes, no
// response is written: the client is gone and a partial report must never
// be emitted.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.readiness.Check(ctx)
	if err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "readiness check aborted",
			slog.Any("error", err),
		)
		return
	}

	code := http.StatusOK
	if report.Status != health.StatusReady {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, dto.NewReadinessResponse(report))
}

// Startup handles GET /health/startup. Always returns 200 with the
// process-start timestamp; orchestrators use it to detect that the process
// has begun serving traffic.
func (h *HealthHandler) Startup(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewStartupResponse(h.uptime.StartedAt()))
}
