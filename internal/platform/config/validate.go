package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
// A validation failure is fatal at wiring time; the aggregator never sees a
// malformed or duplicate dependency descriptor.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Probe.validate(),
		c.Usage.validate(),
		c.Telemetry.validate(),
		validateDependencies(c.Dependencies),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (p *ProbeConfig) validate() error {
	if p.Timeout <= 0 {
		return errors.New("probe.timeout must be positive")
	}
	return nil
}

func (u *UsageConfig) validate() error {
	if u.HMACSecret == "" {
		return errors.New("usage.hmac_secret must not be empty")
	}
	return nil
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

// validateDependencies rejects malformed descriptors: empty or duplicate
// names and URLs that are not absolute http(s).
func validateDependencies(deps []DependencyConfig) error {
	var errs []error

	seen := make(map[string]bool, len(deps))
	for i, dep := range deps {
		if dep.Name == "" {
			errs = append(errs, fmt.Errorf("dependencies[%d].name must not be empty", i))
		} else if seen[dep.Name] {
			errs = append(errs, fmt.Errorf("dependencies[%d].name %q is declared more than once", i, dep.Name))
		}
		seen[dep.Name] = true

		if err := validateHealthCheckURL(dep.HealthCheckURL); err != nil {
			errs = append(errs, fmt.Errorf("dependencies[%d].health_check_url: %w", i, err))
		}
	}

	return errors.Join(errs...)
}

func validateHealthCheckURL(raw string) error {
	if raw == "" {
		return errors.New("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL %q must include a host", raw)
	}
	return nil
}
