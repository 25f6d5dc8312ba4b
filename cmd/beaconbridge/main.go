// Command beaconbridge is the Prover's CLI entry point: it loads
// configuration, wires up logging and metrics, and would hand off to a
// consensus-node client to drive the bootstrap/update/rotation loop (that
// client is an external collaborator outside this repository's scope, per
// the proof engine's non-goals).
//
// Usage:
//
//	beaconbridge [flags]
//
// Flags:
//
//	--datadir               Data directory path (default: .beaconbridge)
//	--consensus-endpoint    Beacon node HTTP endpoint
//	--client-id             Client routing id (default: 0)
//	--log-level             Log level: debug, info, warn, error (default: info)
//	--metrics               Enable the /metrics HTTP endpoint
//	--metrics-addr          Address to serve /metrics on
//	--version               Print version and exit
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/eth2030/beaconbridge/log"
	"github.com/eth2030/beaconbridge/metrics"
)

// Build-time version info, overridable with ldflags:
//
//	go build -ldflags "-X main.version=v0.2.0 -X main.commit=abc1234"
var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. It accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	logger := log.NewWithFormat(log.ParseLevel(cfg.Log.Level), cfg.Log.Format)
	logger.Info("beaconbridge starting", "version", version, "commit", commit)
	logger.Info("configuration",
		"datadir", cfg.DataDir,
		"consensus_endpoint", cfg.ConsensusEndpoint,
		"client_id", cfg.ClientID,
		"minimal_headers_count", cfg.MinimalHeadersCount,
		"metrics_enabled", cfg.Metrics.Enabled,
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		return 1
	}

	registry := metrics.NewRegistry()
	if cfg.Metrics.Enabled {
		srv := startMetricsServer(cfg.Metrics.ListenAddr, registry)
		defer srv.Close()
		logger.Info("metrics endpoint listening", "addr", cfg.Metrics.ListenAddr)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal, shutting down", "signal", sig.String())
	return 0
}

func startMetricsServer(addr string, registry *metrics.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, registry.Handler())
	})
	srv := &http.Server{Addr: addr, Handler: mux}
	go srv.ListenAndServe()
	return srv
}
