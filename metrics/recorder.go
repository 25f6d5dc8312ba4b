package metrics

import (
	"strings"
	"time"
)

// Recorder records the outcome and latency of one proof verification. The
// lightclient verify functions do not take or call a Recorder; recording is
// left to whichever caller times the verification.
type Recorder interface {
	RecordVerification(entryPoint string, err error, elapsed time.Duration)
}

// RegistryRecorder adapts a Registry to the Recorder interface, naming the
// proof-verification counter/histogram pair spec.md's C14 component calls
// for. A RegistryRecorder with a nil Registry records nothing.
type RegistryRecorder struct {
	Registry *Registry
}

// RecordVerification increments ProofVerificationsTotal (labeled by entry
// point and outcome) and observes ProofVerificationDuration (labeled by
// entry point).
func (r RegistryRecorder) RecordVerification(entryPoint string, err error, elapsed time.Duration) {
	if r.Registry == nil {
		return
	}
	outcome := "accepted"
	if err != nil {
		outcome = "rejected"
	}
	r.Registry.IncCounter("proof_verifications_total", "entry_point", entryPoint, "outcome", outcome)
	r.Registry.ObserveDuration("proof_verification_duration_seconds", elapsed.Seconds(), "entry_point", entryPoint)
}

// Handler renders r's current state as an http.HandlerFunc-compatible
// string producer; cmd/beaconbridge wires this behind net/http directly so
// this package stays free of a server dependency.
func (r *Registry) Handler() string {
	var b strings.Builder
	r.WriteText(&b)
	return b.String()
}
