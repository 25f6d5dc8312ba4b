package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIncCounter(t *testing.T) {
	r := NewRegistry()
	r.IncCounter("requests_total", "outcome", "accepted")
	r.IncCounter("requests_total", "outcome", "accepted")
	r.IncCounter("requests_total", "outcome", "rejected")

	var b strings.Builder
	r.WriteText(&b)
	out := b.String()

	if !strings.Contains(out, `requests_total{outcome="accepted"} 2`) {
		t.Errorf("expected accepted counter at 2, got: %s", out)
	}
	if !strings.Contains(out, `requests_total{outcome="rejected"} 1`) {
		t.Errorf("expected rejected counter at 1, got: %s", out)
	}
}

func TestObserveDuration(t *testing.T) {
	r := NewRegistry()
	r.ObserveDuration("latency_seconds", 0.5)
	r.ObserveDuration("latency_seconds", 1.5)

	var b strings.Builder
	r.WriteText(&b)
	out := b.String()

	if !strings.Contains(out, "latency_seconds_sum 2") {
		t.Errorf("expected sum of 2, got: %s", out)
	}
	if !strings.Contains(out, "latency_seconds_count 2") {
		t.Errorf("expected count of 2, got: %s", out)
	}
}

func TestWriteTextIsSorted(t *testing.T) {
	r := NewRegistry()
	r.IncCounter("zeta")
	r.IncCounter("alpha")

	var b strings.Builder
	r.WriteText(&b)
	out := b.String()

	alphaIdx := strings.Index(out, "alpha")
	zetaIdx := strings.Index(out, "zeta")
	if alphaIdx < 0 || zetaIdx < 0 || alphaIdx > zetaIdx {
		t.Errorf("expected alpha before zeta, got: %s", out)
	}
}

func TestRegistryRecorderNilSafe(t *testing.T) {
	var rec RegistryRecorder // Registry is nil
	rec.RecordVerification("client_bootstrap", nil, time.Millisecond)
}

func TestRegistryRecorderRecordsOutcome(t *testing.T) {
	registry := NewRegistry()
	rec := RegistryRecorder{Registry: registry}

	rec.RecordVerification("client_update", nil, 10*time.Millisecond)
	rec.RecordVerification("client_update", errors.New("bad proof"), 5*time.Millisecond)

	out := registry.Handler()
	if !strings.Contains(out, `entry_point="client_update"`) {
		t.Errorf("expected entry_point label, got: %s", out)
	}
	if !strings.Contains(out, `outcome="accepted"`) || !strings.Contains(out, `outcome="rejected"`) {
		t.Errorf("expected both outcomes recorded, got: %s", out)
	}
}
