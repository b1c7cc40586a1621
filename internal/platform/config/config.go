// Package config loads and validates process configuration. Values are
// layered: built-in defaults, then base.yaml, then {profile}.yaml, then
// APP_ environment variables.
package config

// Config holds all configuration for the process.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Seed      SeedConfig      `koanf:"seed"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool              `koanf:"enabled"`
	Exporter    string            `koanf:"exporter"`
	Endpoint    string            `koanf:"endpoint"`
	ServiceName string            `koanf:"service_name"`
	Headers     map[string]string `koanf:"headers"`
}

// SeedConfig controls the demo boards created at startup.
type SeedConfig struct {
	Enabled bool   `koanf:"enabled"`
	OwnerID string `koanf:"owner_id"`
}
