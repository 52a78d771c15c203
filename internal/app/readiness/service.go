// Package readiness implements the readiness aggregation engine: it fans out
// one probe per configured dependency, waits for all of them to settle, and
// folds the per-dependency outcomes into a single report.
package readiness

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/dcc-platform/healthgate/internal/app/fanout"
	"github.com/dcc-platform/healthgate/internal/domain/health"
	"github.com/dcc-platform/healthgate/internal/platform/telemetry"
	"github.com/dcc-platform/healthgate/internal/platform/usage"
	"github.com/dcc-platform/healthgate/internal/ports"
)

// Compile-time check that Service implements ports.ReadinessChecker.
var _ ports.ReadinessChecker = (*Service)(nil)

// Service aggregates dependency health. The dependency list is fixed at
// construction and read-only for the process lifetime; each Check invocation
// probes every dependency concurrently and produces a fresh report.
type Service struct {
	deps    []health.Dependency
	prober  ports.Prober
	tracker *usage.Tracker
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewService creates a readiness Service over the given descriptors. The
// descriptors are assumed validated (non-empty unique names, well-formed
// URLs); configuration loading rejects malformed entries before wiring.
// tracker and metrics may be nil; a nil logger discards log output.
func NewService(deps []health.Dependency, prober ports.Prober, tracker *usage.Tracker, metrics *telemetry.Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		deps:    deps,
		prober:  prober,
		tracker: tracker,
		metrics: metrics,
		logger:  logger,
	}
}

// Check probes all dependencies concurrently and folds their outcomes into a
// report. Every probe starts immediately (no probe is gated on another) and
// Check blocks only on the joint completion. The report always contains one
// entry per dependency; an empty dependency list is vacuously ready.
//
// If ctx is canceled before aggregation completes, Check returns the context
// error and no report.
func (s *Service) Check(ctx context.Context) (health.Report, error) {
	results := fanout.Run(ctx, workerCount(len(s.deps)), s.deps,
		func(ctx context.Context, dep health.Dependency) (health.Outcome, error) {
			return s.prober.Probe(ctx, dep), nil
		})

	if err := ctx.Err(); err != nil {
		return health.Report{}, fmt.Errorf("readiness check aborted: %w", err)
	}

	outcomes := make(map[string]health.Outcome, len(s.deps))
	for i, dep := range s.deps {
		if results[i].Err != nil {
			// Only possible when the context dies between the Err check
			// above and the semaphore acquire; treated as a probe failure
			// so the report stays complete.
			outcomes[dep.Name] = health.Failed(results[i].Err.Error())
			continue
		}
		outcomes[dep.Name] = results[i].Value
	}

	report := health.NewReport(outcomes)
	s.observe(ctx, report)

	return report, nil
}

// observe emits the per-aggregation log line, usage event, and counter.
func (s *Service) observe(ctx context.Context, report health.Report) {
	if report.Status == health.StatusReady {
		s.logger.DebugContext(ctx, "readiness check passed",
			slog.Int("dependencies", len(report.Checks)),
		)
	} else {
		s.logger.WarnContext(ctx, "readiness check failed",
			slog.Any("checks", report.Checks),
		)
	}

	if s.tracker != nil {
		s.tracker.LogEvent(ctx, "health", "readiness", "",
			slog.String("aggregate_status", report.Status.String()),
		)
	}

	if s.metrics != nil {
		s.metrics.ReadinessTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrResult.String(report.Status.String()),
		))
	}
}

// workerCount sizes the fan-out so every probe runs concurrently, while
// satisfying fanout.Run's requirement of at least one worker.
func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
