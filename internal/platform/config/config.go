// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: base.yaml -> {profile}.yaml -> env vars. The
// dependency list is validated here so the readiness aggregator can assume
// well-formed, uniquely named descriptors.
package config

import (
	"time"

	"github.com/dcc-platform/healthgate/internal/domain/health"
)

// Config holds all configuration for the service.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Log          LogConfig          `koanf:"log"`
	Probe        ProbeConfig        `koanf:"probe"`
	Usage        UsageConfig        `koanf:"usage"`
	Telemetry    TelemetryConfig    `koanf:"telemetry"`
	Dependencies []DependencyConfig `koanf:"dependencies"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ProbeConfig holds dependency probe settings. Timeout is the per-probe
// budget applied independently to every dependency; it is a single global
// value, not per-dependency.
type ProbeConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// UsageConfig holds usage-event tracking settings.
type UsageConfig struct {
	// HMACSecret keys the one-way pseudonymization of identities in usage
	// events. Redacted from all log output.
	HMACSecret string `koanf:"hmac_secret"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DependencyConfig declares one external dependency to include in readiness
// aggregation.
type DependencyConfig struct {
	Name           string `koanf:"name"`
	HealthCheckURL string `koanf:"health_check_url"`
	APIKey         string `koanf:"api_key"`
}

// Descriptors converts the validated dependency entries into immutable
// domain descriptors for the aggregator.
func (c *Config) Descriptors() []health.Dependency {
	deps := make([]health.Dependency, len(c.Dependencies))
	for i, d := range c.Dependencies {
		deps[i] = health.Dependency{
			Name:           d.Name,
			HealthCheckURL: d.HealthCheckURL,
			APIKey:         d.APIKey,
		}
	}
	return deps
}
