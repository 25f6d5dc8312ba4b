package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DataDir != ".beaconbridge" {
		t.Errorf("DataDir = %q, want .beaconbridge", cfg.DataDir)
	}
	if cfg.ClientID != 0 {
		t.Errorf("ClientID = %d, want 0", cfg.ClientID)
	}
	if cfg.MinimalHeadersCount != 32 {
		t.Errorf("MinimalHeadersCount = %d, want 32", cfg.MinimalHeadersCount)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be false by default")
	}
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidateRejectsEmptyDataDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty datadir")
	}
}

func TestValidateRejectsUnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Default()
	cfg.Log.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}
}

func TestLoadFull(t *testing.T) {
	input := `
# comment line
datadir = "/data/beaconbridge"
consensus_endpoint = "http://beacon.example:5052"
client_id = 7
minimal_headers_count = 64
log_level = "debug"
log_format = "text"
metrics_enabled = true
metrics_listen_addr = "0.0.0.0:9100"
`
	cfg, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/data/beaconbridge" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.ConsensusEndpoint != "http://beacon.example:5052" {
		t.Errorf("ConsensusEndpoint = %q", cfg.ConsensusEndpoint)
	}
	if cfg.ClientID != 7 {
		t.Errorf("ClientID = %d, want 7", cfg.ClientID)
	}
	if cfg.MinimalHeadersCount != 64 {
		t.Errorf("MinimalHeadersCount = %d, want 64", cfg.MinimalHeadersCount)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled should be true")
	}
	if cfg.Metrics.ListenAddr != "0.0.0.0:9100" {
		t.Errorf("Metrics.ListenAddr = %q", cfg.Metrics.ListenAddr)
	}
}

func TestLoadSkipsBlankAndCommentLines(t *testing.T) {
	input := "\n# just a comment\n\ndatadir = /tmp/x\n"
	cfg, err := Load([]byte(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/x" {
		t.Errorf("DataDir = %q, want /tmp/x", cfg.DataDir)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	if _, err := Load([]byte("not a valid line")); err == nil {
		t.Error("expected error for line without '='")
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	if _, err := Load([]byte("bogus_key = 1")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadRejectsInvalidUint(t *testing.T) {
	if _, err := Load([]byte("client_id = not_a_number")); err == nil {
		t.Error("expected error for invalid client_id")
	}
}
