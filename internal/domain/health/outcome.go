package health

import "fmt"

// TimeoutMessage is the cause message used when a probe's timeout budget
// elapses before any response arrives.
const TimeoutMessage = "timeout"

// OutcomeKind discriminates the Outcome variant.
type OutcomeKind int

const (
	// OutcomeHealthy means the probe received a 2xx response.
	OutcomeHealthy OutcomeKind = iota
	// OutcomeUnhealthy means the probe received a non-2xx response.
	OutcomeUnhealthy
	// OutcomeError means no usable response arrived: timeout, connection
	// refused, DNS failure, TLS failure, or a malformed descriptor.
	OutcomeError
)

// Outcome is the result of exactly one probe attempt against one dependency.
// It exists only within a single aggregation call and is never persisted.
// StatusCode is meaningful only for OutcomeUnhealthy; Message only for
// OutcomeError.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Message    string
}

// Healthy returns the outcome for a 2xx probe response.
func Healthy() Outcome {
	return Outcome{Kind: OutcomeHealthy}
}

// Unhealthy returns the outcome for a non-2xx probe response.
func Unhealthy(statusCode int) Outcome {
	return Outcome{Kind: OutcomeUnhealthy, StatusCode: statusCode}
}

// Failed returns the outcome for a probe that produced no usable response.
// Timeouts use TimeoutMessage; transport failures use the cause message.
func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeError, Message: message}
}

// IsHealthy reports whether this outcome counts toward aggregate readiness.
func (o Outcome) IsHealthy() bool {
	return o.Kind == OutcomeHealthy
}

// Detail renders the human-readable check string carried in the readiness
// report: "healthy", "unhealthy (status: 503)", or "error: connection refused".
func (o Outcome) Detail() string {
	switch o.Kind {
	case OutcomeHealthy:
		return "healthy"
	case OutcomeUnhealthy:
		return fmt.Sprintf("unhealthy (status: %d)", o.StatusCode)
	case OutcomeError:
		return "error: " + o.Message
	default:
		return "unknown"
	}
}
