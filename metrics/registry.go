// Package metrics collects counters and histograms for proof-verification
// outcomes and renders them in the Prometheus text exposition format. It
// is hand-rolled rather than built on a client library (serving the text
// over net/http is left to cmd/beaconbridge): the
// teacher's own metrics stack does the same, reserving
// prometheus/client_golang as an indirect dependency it never imports
// directly.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry aggregates named, labeled counters and histograms. All methods
// are safe for concurrent use.
type Registry struct {
	mu         sync.Mutex
	counters   map[string]float64
	histograms map[string][]float64
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]float64),
		histograms: make(map[string][]float64),
	}
}

// IncCounter increments the named counter, labeled by the given key=value
// pairs (e.g. IncCounter("proof_verifications_total", "entry_point",
// "client_bootstrap", "outcome", "accepted")).
func (r *Registry) IncCounter(name string, labels ...string) {
	key := metricKey(name, labels)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[key]++
}

// ObserveDuration records a duration (in seconds) under the named
// histogram.
func (r *Registry) ObserveDuration(name string, seconds float64, labels ...string) {
	key := metricKey(name, labels)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.histograms[key] = append(r.histograms[key], seconds)
}

func metricKey(name string, labels []string) string {
	var b strings.Builder
	b.WriteString(name)
	for i := 0; i+1 < len(labels); i += 2 {
		if i == 0 {
			b.WriteByte('{')
		} else {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%q", labels[i], labels[i+1])
	}
	if len(labels) >= 2 {
		b.WriteByte('}')
	}
	return b.String()
}

// WriteText renders every collected counter and histogram in the
// Prometheus text exposition format.
func (r *Registry) WriteText(w *strings.Builder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range sortedKeys(r.counters) {
		fmt.Fprintf(w, "%s %g\n", key, r.counters[key])
	}
	for _, key := range sortedKeys(r.histograms) {
		values := r.histograms[key]
		var sum float64
		for _, v := range values {
			sum += v
		}
		name, labelSet := key, ""
		if i := strings.IndexByte(key, '{'); i >= 0 {
			name, labelSet = key[:i], key[i:]
		}
		fmt.Fprintf(w, "%s_sum%s %g\n", name, labelSet, sum)
		fmt.Fprintf(w, "%s_count%s %d\n", name, labelSet, len(values))
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
