package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWithFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	h := handlerForFormat("json", &buf, slog.LevelInfo)
	slog.New(h).Info("hello", "key", "value")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v (output: %q)", err, buf.String())
	}
	if decoded["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", decoded["msg"])
	}
}

func TestNewWithFormatText(t *testing.T) {
	var buf bytes.Buffer
	h := handlerForFormat("text", &buf, slog.LevelInfo)
	slog.New(h).Info("hello", "key", "value")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("output %q missing field", out)
	}
	if strings.Contains(out, "{") {
		t.Errorf("text output should not look like JSON: %q", out)
	}
}

func TestNewWithFormatColor(t *testing.T) {
	var buf bytes.Buffer
	h := handlerForFormat("color", &buf, slog.LevelInfo)
	slog.New(h).Error("boom")

	out := buf.String()
	if !strings.Contains(out, ansiRed) {
		t.Errorf("color output %q missing ANSI red for ERROR", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output %q missing message", out)
	}
}

func TestNewWithFormatUnknownFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	h := handlerForFormat("yaml", &buf, slog.LevelInfo)
	slog.New(h).Info("hello")

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unknown format should fall back to JSON, got: %q", buf.String())
	}
}

func TestFormatterHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := handlerForFormat("text", &buf, slog.LevelWarn)
	logger := slog.New(h)
	logger.Info("should be suppressed")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info line should have been filtered by level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestFormatterHandlerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := newFormatterHandler(&buf, &JSONFormatter{}, slog.LevelInfo)
	logger := slog.New(h).With("module", "prover").WithGroup("sync")
	logger.Info("rotated", "period", 42)

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["module"] != "prover" {
		t.Errorf("module attr missing: %v", decoded)
	}
	if decoded["sync.period"] != float64(42) {
		t.Errorf("grouped attr sync.period missing: %v", decoded)
	}
}

func TestNewWithFormatLogger(t *testing.T) {
	l := NewWithFormat(slog.LevelDebug, "text")
	if l == nil {
		t.Fatal("NewWithFormat returned nil")
	}
	l.Info("smoke test")
}

func TestLevelFromSlog(t *testing.T) {
	cases := []struct {
		in   slog.Level
		want LogLevel
	}{
		{slog.LevelDebug, DEBUG},
		{slog.LevelInfo, INFO},
		{slog.LevelWarn, WARN},
		{slog.LevelError, ERROR},
	}
	for _, c := range cases {
		if got := levelFromSlog(c.in); got != c.want {
			t.Errorf("levelFromSlog(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
