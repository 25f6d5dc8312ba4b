package main

import "testing"

func TestParseFlagsDefaults(t *testing.T) {
	cfg, exit, code := parseFlags(nil)
	if exit {
		t.Fatalf("parseFlags(nil) should not request exit, got code %d", code)
	}
	def := cfg
	if def.DataDir == "" {
		t.Error("default DataDir should not be empty")
	}
}

func TestParseFlagsOverridesDefaults(t *testing.T) {
	cfg, exit, code := parseFlags([]string{
		"-datadir", "/tmp/custom",
		"-consensus-endpoint", "http://localhost:9999",
		"-client-id", "42",
		"-minimal-headers-count", "7",
		"-log-level", "debug",
		"-metrics",
		"-metrics-addr", "127.0.0.1:9100",
	})
	if exit {
		t.Fatalf("parseFlags should not request exit, got code %d", code)
	}
	if cfg.DataDir != "/tmp/custom" {
		t.Errorf("DataDir = %q, want /tmp/custom", cfg.DataDir)
	}
	if cfg.ConsensusEndpoint != "http://localhost:9999" {
		t.Errorf("ConsensusEndpoint = %q, want http://localhost:9999", cfg.ConsensusEndpoint)
	}
	if cfg.ClientID != 42 {
		t.Errorf("ClientID = %d, want 42", cfg.ClientID)
	}
	if cfg.MinimalHeadersCount != 7 {
		t.Errorf("MinimalHeadersCount = %d, want 7", cfg.MinimalHeadersCount)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be true")
	}
	if cfg.Metrics.ListenAddr != "127.0.0.1:9100" {
		t.Errorf("Metrics.ListenAddr = %q, want 127.0.0.1:9100", cfg.Metrics.ListenAddr)
	}
}

func TestParseFlagsVersionRequestsExit(t *testing.T) {
	_, exit, code := parseFlags([]string{"-version"})
	if !exit || code != 0 {
		t.Errorf("exit=%v code=%d, want exit=true code=0", exit, code)
	}
}

func TestParseFlagsInvalidFlagRequestsExit(t *testing.T) {
	_, exit, code := parseFlags([]string{"-not-a-real-flag"})
	if !exit || code != 2 {
		t.Errorf("exit=%v code=%d, want exit=true code=2", exit, code)
	}
}

func TestParseFlagsRejectsNonNumericUint64(t *testing.T) {
	_, exit, code := parseFlags([]string{"-client-id", "not-a-number"})
	if !exit || code != 2 {
		t.Errorf("exit=%v code=%d, want exit=true code=2", exit, code)
	}
}
