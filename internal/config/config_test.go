package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	yamlContent := []byte(`
backend:
  base_url: "http://analysis.internal:5000"
tracker:
  base_url: "http://tracker.internal:5001"
storage:
  sqlite_path: "/var/lib/mastermind/mastermind.db"
  archive_dir: "/var/lib/mastermind/data"
logging:
  level: "debug"
  format: "text"
ui:
  account_size: 25000
  risk_percent: 1.5
consult:
  rate_per_min: 60
scan:
  cron: "30 17 * * 1-5"
  intel_poll_seconds: 15
`)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, yamlContent, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Backend.BaseURL != "http://analysis.internal:5000" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Tracker.BaseURL != "http://tracker.internal:5001" {
		t.Errorf("Tracker.BaseURL = %q", cfg.Tracker.BaseURL)
	}
	if cfg.Storage.SQLitePath != "/var/lib/mastermind/mastermind.db" {
		t.Errorf("Storage.SQLitePath = %q", cfg.Storage.SQLitePath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "text" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if cfg.UI.AccountSize != 25000 || cfg.UI.RiskPercent != 1.5 {
		t.Errorf("UI = %+v", cfg.UI)
	}
	if cfg.Consult.RatePerMin != 60 {
		t.Errorf("Consult.RatePerMin = %d", cfg.Consult.RatePerMin)
	}
	if cfg.Scan.Cron != "30 17 * * 1-5" || cfg.Scan.IntelPollSeconds != 15 {
		t.Errorf("Scan = %+v", cfg.Scan)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load() on a missing file should not error, got %v", err)
	}

	want := Default()
	if cfg.Backend.BaseURL != want.Backend.BaseURL {
		t.Errorf("Backend.BaseURL = %q, want default %q", cfg.Backend.BaseURL, want.Backend.BaseURL)
	}
	if cfg.Consult.RatePerMin != 120 || cfg.Scan.IntelPollSeconds != 30 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MASTERMIND_BACKEND_URL", "http://override:9999")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CONSULT_RATE_PER_MIN", "30")
	t.Setenv("INTEL_POLL_SECONDS", "not-a-number")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Backend.BaseURL != "http://override:9999" {
		t.Errorf("Backend.BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Consult.RatePerMin != 30 {
		t.Errorf("Consult.RatePerMin = %d", cfg.Consult.RatePerMin)
	}
	// Unparseable numeric overrides keep the default.
	if cfg.Scan.IntelPollSeconds != 30 {
		t.Errorf("Scan.IntelPollSeconds = %d, want default 30", cfg.Scan.IntelPollSeconds)
	}
}
