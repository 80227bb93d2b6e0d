// Package pipeline runs the complete fetch → resolve → layout → render
// sequence for one report and owns the change-detection gate around it.
//
// # Architecture
//
// A run has five stages:
//
//  1. Fetch: one POST to the dashboard API
//  2. Gate: compare the payload timestamp with the persisted marker
//  3. Resolve: join the station table against the payload
//  4. Layout + Render: compute the plan and paint the PNG
//  5. Persist: write the image, then the marker, then publish (best effort)
//
// A run either fully completes (image and marker both written) or aborts
// before producing either; degraded conditions (missing logo, missing
// station, unparsable timestamp) substitute documented defaults and log a
// warning instead of aborting.
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/usmankhanpk/riverboard/pkg/publish"
	"github.com/usmankhanpk/riverboard/pkg/report"
)

// Options configures one run.
type Options struct {
	// Table is the station/group configuration. Zero value means the
	// built-in default table.
	Table report.Table

	// OutDir is where the PNG is written. Empty means the working directory.
	OutDir string

	// LogoPath overrides the header logo asset. Empty means the default
	// asset in the working directory.
	LogoPath string

	// Force renders even when the payload timestamp matches the marker.
	Force bool

	// Publisher, when non-nil, receives the finished PNG. Publish failures
	// are warnings, never run failures.
	Publisher publish.Publisher
}

// setDefaults fills zero values.
func (o *Options) setDefaults() {
	if len(o.Table.Stations) == 0 {
		o.Table = report.DefaultTable()
	}
	if o.OutDir == "" {
		o.OutDir = "."
	}
}

// Result describes a finished run.
type Result struct {
	// Skipped is true when the payload timestamp matched the marker and no
	// artifact was produced.
	Skipped bool

	// OutPath is the written image path (empty when skipped).
	OutPath string

	// Timestamp is the payload's reporting timestamp.
	Timestamp string

	// Rows is the number of station rows rendered.
	Rows int

	// Stats carries per-stage timings.
	Stats Stats
}

// discardLogger is used when no logger is supplied.
func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
