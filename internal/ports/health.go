package ports

import (
	"context"
	"time"

	"github.com/dcc-platform/healthgate/internal/domain/health"
)

// Prober issues a single probe attempt against one dependency.
type Prober interface {
	// Probe performs one bounded health request against dep and classifies
	// the result. It never returns an error: timeouts and transport failures
	// are converted into error outcomes. Implementations must respect
	// context cancellation and apply their own per-probe timeout.
	Probe(ctx context.Context, dep health.Dependency) health.Outcome
}

// ReadinessChecker produces the aggregate readiness report consumed by the
// readiness endpoint handler.
type ReadinessChecker interface {
	// Check probes every configured dependency concurrently and folds the
	// outcomes into a report. A non-nil error is returned only when ctx is
	// canceled before aggregation completes; no partial report is produced
	// in that case.
	Check(ctx context.Context) (health.Report, error)
}

// UptimeSource exposes the immutable process-start state consumed by the
// liveness and startup endpoints.
type UptimeSource interface {
	// StartedAt returns the instant the process captured at initialization.
	StartedAt() time.Time

	// Uptime returns the elapsed time since StartedAt. Successive calls
	// return non-decreasing values.
	Uptime() time.Duration
}
