package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/flowboard/internal/platform/config"
)

// writeConfigs creates base.yaml and the named profile files in a temp dir.
func writeConfigs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_RepositoryProfiles(t *testing.T) {
	t.Chdir("../../..")

	local, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(local) error = %v", err)
	}
	if local.Log.Level != "debug" || local.Log.Format != "text" {
		t.Errorf("local Log = %+v, want debug/text", local.Log)
	}
	if !local.Seed.Enabled || local.Seed.OwnerID != config.DefaultSeedOwnerID {
		t.Errorf("local Seed = %+v, want enabled with default owner", local.Seed)
	}
	if local.Telemetry.Enabled {
		t.Error("local Telemetry.Enabled = true, want false")
	}

	prod, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(prod) error = %v", err)
	}
	if !prod.Telemetry.Enabled || prod.Telemetry.Exporter != "otlp" || prod.Telemetry.Endpoint == "" {
		t.Errorf("prod Telemetry = %+v, want enabled otlp with endpoint", prod.Telemetry)
	}
	if prod.Telemetry.ServiceName != "flowboard" {
		t.Errorf("prod Telemetry.ServiceName = %q, want inherited flowboard", prod.Telemetry.ServiceName)
	}
	if prod.Seed.Enabled {
		t.Error("prod Seed.Enabled = true, want false")
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": "log:\n  format: text\n",
		"dev.yaml":  "",
	})

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text from base.yaml", cfg.Log.Format)
	}
	if cfg.Telemetry.ServiceName != "flowboard" || cfg.Seed.OwnerID != config.DefaultSeedOwnerID {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": "log:\n  level: info\ntelemetry:\n  headers:\n    x-tenant: boards\n",
		"dev.yaml":  "log:\n  level: warn\n",
	})

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Telemetry.Headers["x-tenant"] != "boards" {
		t.Errorf("Telemetry.Headers = %v, want x-tenant=boards", cfg.Telemetry.Headers)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfigs(t, map[string]string{"base.yaml": "", "dev.yaml": ""})
	t.Setenv("APP_LOG_LEVEL", "error")
	t.Setenv("APP_TELEMETRY_SERVICE_NAME", "boards-api")
	t.Setenv("APP_SEED_ENABLED", "true")
	t.Setenv("APP_SEED_OWNER_ID", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	cfg, err := config.Load("dev", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
	}
	if cfg.Telemetry.ServiceName != "boards-api" {
		t.Errorf("Telemetry.ServiceName = %q, want boards-api", cfg.Telemetry.ServiceName)
	}
	if !cfg.Seed.Enabled || cfg.Seed.OwnerID != "6ba7b810-9dad-11d1-80b4-00c04fd430c8" {
		t.Errorf("Seed = %+v, want enabled with env owner", cfg.Seed)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := writeConfigs(t, map[string]string{
		"base.yaml": "",
		"bad.yaml":  "log:\n  level: loud\n",
	})

	tests := []struct {
		name    string
		profile string
		want    string
	}{
		{name: "empty profile", profile: " ", want: "profile must not be empty"},
		{name: "path separator", profile: "a/b", want: "path separators"},
		{name: "traversal", profile: "..", want: "path traversal"},
		{name: "missing profile file", profile: "staging", want: "loading profile config"},
		{name: "invalid value", profile: "bad", want: "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(tt.profile, config.WithConfigDir(dir))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load(%q) error = %v, want it to mention %q", tt.profile, err, tt.want)
			}
		})
	}
}
