// Package health contains the domain types for dependency-health aggregation:
// the dependency descriptor, the per-probe outcome variant, and the readiness
// report folded from a set of outcomes. All types are plain data; probing and
// transport concerns live in the platform and adapter layers.
package health

// Dependency describes one external dependency and how to probe it.
// Descriptors are constructed once at service wiring time from validated
// configuration and never mutated afterwards.
type Dependency struct {
	// Name uniquely identifies the dependency and becomes the key in the
	// readiness report's checks map (e.g., "database", "billing-api").
	Name string

	// HealthCheckURL is the absolute URL probed with a GET request.
	HealthCheckURL string

	// APIKey, when non-empty, is sent as the X-API-Key header on the probe
	// request. Never logged; the logging layer redacts it by field name.
	APIKey string
}
