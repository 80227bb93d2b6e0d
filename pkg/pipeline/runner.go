package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"

	"github.com/usmankhanpk/riverboard/pkg/feed"
	"github.com/usmankhanpk/riverboard/pkg/fonts"
	"github.com/usmankhanpk/riverboard/pkg/layout"
	"github.com/usmankhanpk/riverboard/pkg/marker"
	"github.com/usmankhanpk/riverboard/pkg/render"
	"github.com/usmankhanpk/riverboard/pkg/report"
)

// Fetcher produces the dashboard payload for one run.
type Fetcher interface {
	Fetch(ctx context.Context) (*feed.Payload, error)
}

// Stats carries per-stage timings of a run.
type Stats struct {
	FetchTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// Runner executes report runs. It is stateless apart from its
// collaborators; successive runs share nothing but the marker store.
type Runner struct {
	Feed   Fetcher
	Marker marker.Store
	Clock  clockwork.Clock
	Logger *log.Logger
}

// NewRunner wires a runner. A nil marker store disables change detection,
// a nil clock uses the real one, a nil logger discards output.
func NewRunner(f Fetcher, m marker.Store, clock clockwork.Clock, logger *log.Logger) *Runner {
	if m == nil {
		m = marker.NewNullStore()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Feed: f, Marker: m, Clock: clock, Logger: logger}
}

// Run performs one complete run. It returns a skipped result when the
// payload's reporting timestamp equals the persisted marker and the run is
// not forced; otherwise it renders, writes the image, persists the marker
// and (best effort) publishes.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	opts.setDefaults()
	result := &Result{}

	fetchStart := r.Clock.Now()
	payload, err := r.Feed.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	result.Stats.FetchTime = r.Clock.Since(fetchStart)
	result.Timestamp = payload.LatestReadingTime
	r.Logger.Info("fetched dashboard payload",
		"stations", len(payload.Stations),
		"reported", payload.LatestReadingTime,
		"duration", result.Stats.FetchTime)

	if !opts.Force {
		last, ok, err := r.Marker.Last()
		if err != nil {
			return nil, fmt.Errorf("read marker: %w", err)
		}
		if ok && last == payload.LatestReadingTime {
			r.Logger.Info("report unchanged, skipping render", "reported", last)
			result.Skipped = true
			return result, nil
		}
	}

	readings, missing := report.Resolve(opts.Table, payload.Stations)
	for _, name := range missing {
		r.Logger.Warn("station missing from payload, using defaults", "station", name)
	}
	result.Rows = len(readings)

	layoutStart := r.Clock.Now()
	faces, err := fonts.Load(layout.DefaultMetrics())
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}
	plan := layout.Build(readings, opts.Table.Groups, layout.DefaultMetrics(), faces)
	result.Stats.LayoutTime = r.Clock.Since(layoutStart)
	r.Logger.Debug("computed layout",
		"rows", len(plan.Rows),
		"height", plan.Height,
		"duration", result.Stats.LayoutTime)

	if _, err := report.ParseReportTime(payload.LatestReadingTime); err != nil {
		r.Logger.Warn("reporting timestamp unparsable, using current time",
			"reported", payload.LatestReadingTime)
	}
	dateText, timeText := report.HeaderDateTime(payload.LatestReadingTime, r.Clock)

	renderStart := r.Clock.Now()
	var renderOpts []render.Option
	if opts.LogoPath != "" {
		renderOpts = append(renderOpts, render.WithLogo(opts.LogoPath))
	}
	artifact, err := render.New(faces, renderOpts...).Render(plan, readings, opts.Table.Groups, render.Header{
		DateText: dateText,
		TimeText: timeText,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Stats.RenderTime = r.Clock.Since(renderStart)
	if artifact.LogoMissing {
		r.Logger.Warn("logo asset not found, header text recentered")
	}

	name := report.Filename(payload.LatestReadingTime, r.Clock)
	outPath := filepath.Join(opts.OutDir, name)
	if err := os.WriteFile(outPath, artifact.PNG, 0644); err != nil {
		return nil, fmt.Errorf("write image: %w", err)
	}
	result.OutPath = outPath
	r.Logger.Info("rendered report",
		"rows", result.Rows,
		"path", outPath,
		"duration", result.Stats.RenderTime)

	if err := r.Marker.Save(payload.LatestReadingTime); err != nil {
		return nil, fmt.Errorf("save marker: %w", err)
	}

	if opts.Publisher != nil {
		caption := fmt.Sprintf("NEOC Daily Rivers Situation Update – %s %s", dateText, timeText)
		if err := opts.Publisher.Publish(ctx, name, artifact.PNG, caption); err != nil {
			r.Logger.Warn("publication failed", "err", err)
		} else {
			r.Logger.Info("published report", "caption", caption)
		}
	}

	return result, nil
}
