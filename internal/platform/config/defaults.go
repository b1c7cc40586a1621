package config

import "github.com/knadh/koanf/maps"

// DefaultSeedOwnerID owns the demo boards unless seed.owner_id is set.
const DefaultSeedOwnerID = "550e8400-e29b-41d4-a716-446655440000"

// defaults are loaded before any file and can be overridden by every layer.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "flowboard",

		"seed.enabled":  false,
		"seed.owner_id": DefaultSeedOwnerID,
	}
}

// defaultsProvider feeds defaults() to koanf as a nested map.
type defaultsProvider struct{}

func (defaultsProvider) ReadBytes() ([]byte, error) {
	return nil, errReadBytesUnsupported
}

func (defaultsProvider) Read() (map[string]any, error) {
	return maps.Unflatten(defaults(), "."), nil
}
