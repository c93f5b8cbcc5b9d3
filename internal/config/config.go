// Package config loads the client configuration from YAML with environment
// variable overrides. Every field has a usable default so the binaries run
// with no config file at all.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for the Mastermind client suite.
type Config struct {
	Backend Backend `yaml:"backend"`
	Tracker Tracker `yaml:"tracker"`
	Storage Storage `yaml:"storage"`
	Logging Logging `yaml:"logging"`
	UI      UI      `yaml:"ui"`
	Consult Consult `yaml:"consult"`
	Scan    Scan    `yaml:"scan"`
}

// Backend points at the analysis API server.
type Backend struct {
	BaseURL string `yaml:"base_url"`
}

// Tracker points at the external strategy tracker service.
type Tracker struct {
	BaseURL string `yaml:"base_url"`
}

// Storage holds paths for local persistence.
type Storage struct {
	SQLitePath string `yaml:"sqlite_path"`
	ArchiveDir string `yaml:"archive_dir"`
}

// Logging configures the application logger.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// UI holds the position-sizer preferences used until the stored values load.
type UI struct {
	AccountSize float64 `yaml:"account_size"`
	RiskPercent float64 `yaml:"risk_percent"`
}

// Consult paces the auto-consult batch runner.
type Consult struct {
	RatePerMin int `yaml:"rate_per_min"`
}

// Scan configures the scheduled watchlist scanner and the market
// intelligence poller.
type Scan struct {
	// Cron is a standard 5-field cron expression.
	Cron string `yaml:"cron"`

	IntelPollSeconds int `yaml:"intel_poll_seconds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Backend: Backend{BaseURL: "http://localhost:5000"},
		Tracker: Tracker{BaseURL: "http://localhost:5001"},
		Storage: Storage{
			SQLitePath: "mastermind.db",
			ArchiveDir: "data",
		},
		Logging: Logging{Level: "info", Format: "json"},
		UI:      UI{AccountSize: 10000, RiskPercent: 2},
		Consult: Consult{RatePerMin: 120},
		Scan: Scan{
			Cron:             "0 18 * * 1-5",
			IntelPollSeconds: 30,
		},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. A missing file is not an error; defaults plus
// environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MASTERMIND_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("MASTERMIND_TRACKER_URL"); v != "" {
		cfg.Tracker.BaseURL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := os.Getenv("ARCHIVE_DIR"); v != "" {
		cfg.Storage.ArchiveDir = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("CONSULT_RATE_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Consult.RatePerMin = n
		}
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("INTEL_POLL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Scan.IntelPollSeconds = n
		}
	}
}
