package health

// UnavailableMessage is the fixed top-level error carried by an unhealthy
// report. Per-dependency detail lives in the checks map; this value only
// drives the caller's coarse status mapping.
const UnavailableMessage = "Service unavailable"

// Status is the aggregate readiness verdict folded from all outcomes.
type Status int

const (
	// StatusReady means every probed dependency reported healthy.
	StatusReady Status = iota
	// StatusUnhealthy means at least one dependency was unhealthy or errored.
	StatusUnhealthy
)

// String returns the wire representation of the status.
func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "unhealthy"
}

// Report is the result of one readiness aggregation. It is constructed fresh
// on every invocation and immutable once returned. Checks holds one entry per
// configured dependency, keyed by descriptor name. Error is non-empty iff
// Status is StatusUnhealthy.
type Report struct {
	Status Status
	Checks map[string]string
	Error  string
}

// NewReport folds per-dependency outcomes into a report. The aggregate is
// StatusReady iff every outcome is healthy; an empty outcome set is vacuously
// ready. Checks always has exactly one entry per input name.
func NewReport(outcomes map[string]Outcome) Report {
	checks := make(map[string]string, len(outcomes))
	ready := true

	for name, outcome := range outcomes {
		checks[name] = outcome.Detail()
		if !outcome.IsHealthy() {
			ready = false
		}
	}

	report := Report{Status: StatusReady, Checks: checks}
	if !ready {
		report.Status = StatusUnhealthy
		report.Error = UnavailableMessage
	}
	return report
}
