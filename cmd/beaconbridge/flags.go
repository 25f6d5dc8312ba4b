package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/eth2030/beaconbridge/config"
)

// uint64Value implements flag.Value for uint64 flags, since the standard
// flag package lacks direct uint64 support.
type uint64Value struct {
	p *uint64
}

func (v *uint64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatUint(*v.p, 10)
}

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 value %q", s)
	}
	*v.p = n
	return nil
}

// parseFlags parses args into a config.Config seeded with defaults. exit
// is true when flag parsing itself decided the program should stop (-h or
// a parse error, code 2; -version, code 0); code is the exit code to use in
// that case.
func parseFlags(args []string) (cfg config.Config, exit bool, code int) {
	cfg = config.Default()

	fs := flag.NewFlagSet("beaconbridge", flag.ContinueOnError)
	fs.StringVar(&cfg.DataDir, "datadir", cfg.DataDir, "data directory path")
	fs.StringVar(&cfg.ConsensusEndpoint, "consensus-endpoint", cfg.ConsensusEndpoint, "beacon node HTTP endpoint")
	fs.Var(&uint64Value{p: &cfg.ClientID}, "client-id", "client routing id")
	fs.Var(&uint64Value{p: &cfg.MinimalHeadersCount}, "minimal-headers-count", "minimum headers per client update")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.Log.Format, "log-format", cfg.Log.Format, "log format: json, text, color")
	fs.BoolVar(&cfg.Metrics.Enabled, "metrics", cfg.Metrics.Enabled, "enable the /metrics HTTP endpoint")
	fs.StringVar(&cfg.Metrics.ListenAddr, "metrics-addr", cfg.Metrics.ListenAddr, "address to serve /metrics on")
	printVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, true, 2
	}
	if *printVersion {
		fmt.Printf("beaconbridge %s (%s)\n", version, commit)
		return cfg, true, 0
	}
	return cfg, false, 0
}
