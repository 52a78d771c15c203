package config

const defaultServerPort = 8080

// defaults returns the default configuration values and drives the
// .env.example rendering in ExampleEnv. An empty string marks a value the
// operator must supply. Dependency entries have no defaults; they are
// declared per profile in YAML.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"probe.timeout": "5s",

		"usage.hmac_secret": "",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "healthgate",
	}
}

// envDocs holds the one-line descriptions rendered above each entry in the
// generated .env.example.
var envDocs = map[string]string{
	"server.host":          "Interface the HTTP server binds to",
	"server.port":          "Port the HTTP server listens on",
	"server.read_timeout":  "Maximum duration for reading an entire request",
	"server.write_timeout": "Maximum duration before timing out a response write",
	"server.idle_timeout":  "Maximum keep-alive idle time",

	"log.level":  "Minimum log level: debug, info, warn, error",
	"log.format": "Log output format: json or text",

	"probe.timeout": "Per-dependency health probe budget",

	"usage.hmac_secret": "Secret keying the pseudonymization of usage-event identities",

	"telemetry.enabled":      "Enable OpenTelemetry tracing and metrics",
	"telemetry.exporter":     "Telemetry exporter: stdout or otlp",
	"telemetry.endpoint":     "OTLP collector endpoint (required when exporter is otlp)",
	"telemetry.service_name": "Service name attached to telemetry resources",
}
