// Package lifecycle holds the immutable process-start state consumed by the
// liveness and startup endpoints. The state is captured exactly once during
// wiring and only ever read afterwards, so no synchronization is needed.
package lifecycle

import "time"

// State records the instant the process finished initializing.
type State struct {
	startedAt time.Time
}

// Capture records the current instant as the process start time.
func Capture() *State {
	return At(time.Now())
}

// At creates a State anchored at a fixed instant. Used by tests and by
// callers that capture the instant before wiring completes.
func At(startedAt time.Time) *State {
	return &State{startedAt: startedAt}
}

// StartedAt returns the captured start instant.
func (s *State) StartedAt() time.Time {
	return s.startedAt
}

// Uptime returns the elapsed time since the start instant. Monotonically
// non-decreasing across calls.
func (s *State) Uptime() time.Duration {
	return time.Since(s.startedAt)
}
