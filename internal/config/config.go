// Package config holds the settings shared by the spanner-clustering CLI
// and the spannerd HTTP server.
package config

import "github.com/cockroachdb/errors"

// Config is the settings shared by both binaries built around the core
// spanner package: a stretch factor, and the handful of I/O knobs each
// binary reads flags or environment variables into.
type Config struct {
	// Stretch is the spanner approximation factor t > 1 passed through to
	// spanner.BuildSpannerAndClusters.
	Stretch float64

	// InputPath is the CSV file of points read by the CLI. Unused by the
	// server, which takes points over HTTP instead.
	InputPath string

	// OutputDir is where the CLI writes edges.csv, membership.csv, and
	// graph.dot.
	OutputDir string

	// Compress zstd-compresses each output file the CLI writes.
	Compress bool

	// Addr is the listen address for the HTTP server (host:port).
	Addr string

	// UseMetrics toggles VictoriaMetrics counters/histograms in the server.
	UseMetrics bool
}

// Validate checks that cfg's fields are usable and returns a descriptive
// error if not.
func (cfg *Config) Validate() error {
	if cfg.Stretch <= 1 {
		return errors.Newf("config: Stretch must be > 1, got %v", cfg.Stretch)
	}
	if cfg.OutputDir == "" {
		return errors.New("config: OutputDir must not be empty")
	}
	return nil
}
