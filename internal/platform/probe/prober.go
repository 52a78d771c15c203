// Package probe provides the outbound HTTP prober used by the readiness
// aggregator. Each probe is a single GET against a dependency's health check
// URL, bounded by its own timeout, instrumented with an OpenTelemetry client
// span, and classified into a domain outcome. A probe never fails with an
// error: timeouts and transport faults become error outcomes.
//
// Context propagation for header injection (set by inbound middleware):
//
//	ctx = probe.WithRequestID(ctx, "req-123")
//	ctx = probe.WithCorrelationID(ctx, "corr-456")
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dcc-platform/healthgate/internal/domain/health"
	"github.com/dcc-platform/healthgate/internal/platform/telemetry"
	"github.com/dcc-platform/healthgate/internal/ports"
)

// DefaultTimeout is the per-probe budget applied when configuration does not
// override it.
const DefaultTimeout = 5 * time.Second

// headerAPIKey carries the dependency's API key on the probe request.
// The logging layer redacts this header name.
const headerAPIKey = "X-API-Key"

// Context key types for request metadata propagation.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID returns a new context with the given request ID stored in it.
// Inbound middleware calls this so probes triggered by a request carry its
// X-Request-ID header.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// WithCorrelationID returns a new context with the given correlation ID
// stored in it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// Compile-time interface check.
var _ ports.Prober = (*HTTPProber)(nil)

// HTTPProber probes dependencies over HTTP. One prober instance is shared by
// all dependencies; each probe call is independent and carries its own
// timeout, so a slow dependency cannot extend another's budget.
type HTTPProber struct {
	client  *http.Client
	timeout time.Duration
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// New creates an HTTPProber with the given per-probe timeout. If timeout is
// non-positive, DefaultTimeout is used. If metrics is nil, metric recording
// is skipped; a nil logger discards log output.
func New(timeout time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &HTTPProber{
		// Cancellation and deadlines come from the per-probe context, not
		// from http.Client.Timeout, so the parent context can also abort an
		// in-flight probe.
		client:  &http.Client{},
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// Probe issues one GET against dep.HealthCheckURL and classifies the result:
//
//   - 2xx response            -> healthy
//   - non-2xx response        -> unhealthy with the status code
//   - timeout budget elapsed  -> error outcome with the "timeout" cause
//   - transport failure       -> error outcome with the cause message
//
// Exactly one attempt is made per invocation; retries are the orchestrator's
// concern.
func (p *HTTPProber) Probe(ctx context.Context, dep health.Dependency) health.Outcome {
	start := time.Now()

	probeCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	outcome := p.execute(probeCtx, dep)

	if !outcome.IsHealthy() {
		p.logger.WarnContext(ctx, "dependency probe failed",
			slog.String("dependency", dep.Name),
			slog.String("outcome", outcome.Detail()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
	p.recordMetrics(ctx, dep, start, outcome)

	return outcome
}

// execute performs the bounded request and classification. ctx already
// carries the probe deadline.
func (p *HTTPProber) execute(ctx context.Context, dep health.Dependency) health.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, dep.HealthCheckURL, nil)
	if err != nil {
		return health.Failed(err.Error())
	}

	if dep.APIKey != "" {
		req.Header.Set(headerAPIKey, dep.APIKey)
	}
	injectHeaders(ctx, req)

	spanCtx, span := p.startSpan(ctx, req, dep)
	defer span.End()
	req = req.WithContext(spanCtx)

	resp, err := p.client.Do(req)
	if err != nil {
		outcome := classifyTransportError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome.Detail())
		return outcome
	}
	defer drainBody(resp)

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return health.Healthy()
	}

	span.SetStatus(codes.Error, http.StatusText(resp.StatusCode))
	return health.Unhealthy(resp.StatusCode)
}

// classifyTransportError converts a request error into an error outcome.
// A deadline hit on the probe-scoped context means the timeout budget
// elapsed; everything else reports the underlying cause message.
func classifyTransportError(err error) health.Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return health.Failed(health.TimeoutMessage)
	}
	if errors.Is(err, context.Canceled) {
		return health.Failed("canceled")
	}

	// http.Client wraps failures in *url.Error; report the cause rather
	// than the full "Get \"http://...\": ..." wrapper.
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return health.Failed(uerr.Err.Error())
	}
	return health.Failed(err.Error())
}

// injectHeaders adds Request-ID and Correlation-ID headers to the probe
// request if present in the context.
func injectHeaders(ctx context.Context, req *http.Request) {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Correlation-ID", id)
	}
}

// startSpan creates an OTEL client span for the probe and injects W3C Trace
// Context into the request headers.
func (p *HTTPProber) startSpan(ctx context.Context, req *http.Request, dep health.Dependency) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("probe")

	spanName := fmt.Sprintf("HTTP GET %s", dep.Name)
	ctx, span := tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", req.URL.String()),
			attribute.String("dependency", dep.Name),
		),
	)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return ctx, span
}

// recordMetrics records probe duration and count. Safe to call with nil
// metrics.
func (p *HTTPProber) recordMetrics(ctx context.Context, dep health.Dependency, start time.Time, outcome health.Outcome) {
	if p.metrics == nil {
		return
	}

	result := "error"
	switch outcome.Kind {
	case health.OutcomeHealthy:
		result = "healthy"
	case health.OutcomeUnhealthy:
		result = "unhealthy"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDependency.String(dep.Name),
		telemetry.AttrHTTPStatus.Int(outcome.StatusCode),
		telemetry.AttrResult.String(result),
	)

	p.metrics.ProbeDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	p.metrics.ProbeTotal.Add(ctx, 1, attrs)
}

// drainBody discards and closes the response body so the underlying
// connection can be reused.
func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
