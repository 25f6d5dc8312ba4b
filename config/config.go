// Package config loads the Prover process's configuration from a small
// key=value text format, in the same hand-rolled style as the teacher's
// node config loader (no YAML/TOML library import: the teacher parses
// "key = value" lines itself, and this repo's configuration surface is
// smaller still).
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Config holds everything the CLI needs to drive a Prover against a real
// consensus node.
type Config struct {
	DataDir             string
	ConsensusEndpoint   string
	ClientID            uint64
	MinimalHeadersCount uint64
	Log                 LogConfig
	Metrics             MetricsConfig
}

// LogConfig controls the log package's level and format.
type LogConfig struct {
	Level string
	// Format selects the output encoding: "json" (default, machine-parseable),
	// "text" (aligned plain-text lines), or "color" (text with ANSI level
	// colors, for an interactive terminal).
	Format string
}

// MetricsConfig controls whether the metrics HTTP endpoint is served.
type MetricsConfig struct {
	Enabled    bool
	ListenAddr string
}

// Default returns a Config with sensible defaults, matching the teacher's
// DefaultNodeConfig pattern: a caller can load a partial file over this
// and get reasonable values for everything it omits.
func Default() Config {
	return Config{
		DataDir:             ".beaconbridge",
		ConsensusEndpoint:   "http://127.0.0.1:5052",
		ClientID:            0,
		MinimalHeadersCount: 32,
		Log:                 LogConfig{Level: "info", Format: "json"},
		Metrics:             MetricsConfig{Enabled: false, ListenAddr: "127.0.0.1:9090"},
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("config: datadir must not be empty")
	}
	if c.ConsensusEndpoint == "" {
		return errors.New("config: consensus_endpoint must not be empty")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "json", "text", "color":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Log.Format)
	}
	return nil
}

// Load parses a key=value configuration from raw bytes into a Config
// seeded with Default(). Lines starting with '#' and blank lines are
// skipped; no section headers are needed since every key is top-level.
func Load(data []byte) (Config, error) {
	cfg := Default()
	for lineNum, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' {
			continue
		}
		eqIdx := strings.Index(line, "=")
		if eqIdx < 0 {
			return cfg, fmt.Errorf("line %d: expected key = value", lineNum+1)
		}
		key := strings.TrimSpace(line[:eqIdx])
		val := unquote(strings.TrimSpace(line[eqIdx+1:]))
		if err := apply(&cfg, key, val, lineNum+1); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

func apply(cfg *Config, key, val string, lineNum int) error {
	switch key {
	case "datadir":
		cfg.DataDir = val
	case "consensus_endpoint":
		cfg.ConsensusEndpoint = val
	case "client_id":
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid client_id: %w", lineNum, err)
		}
		cfg.ClientID = n
	case "minimal_headers_count":
		n, err := strconv.ParseUint(val, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid minimal_headers_count: %w", lineNum, err)
		}
		cfg.MinimalHeadersCount = n
	case "log_level":
		cfg.Log.Level = val
	case "log_format":
		cfg.Log.Format = val
	case "metrics_enabled":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("line %d: invalid metrics_enabled: %w", lineNum, err)
		}
		cfg.Metrics.Enabled = b
	case "metrics_listen_addr":
		cfg.Metrics.ListenAddr = val
	default:
		return fmt.Errorf("line %d: unknown key %q", lineNum, key)
	}
	return nil
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
