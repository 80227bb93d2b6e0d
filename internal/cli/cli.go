// Package cli implements the riverboard command-line interface.
//
// This package provides commands for generating the daily river situation
// report, watching the dashboard on a schedule, and inspecting the station
// table. The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Fetch the latest readings and render the report image
//   - watch: Run generate on a cron schedule until interrupted
//   - stations: Print the configured station table
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/usmankhanpk/riverboard/pkg/buildinfo"
	"github.com/usmankhanpk/riverboard/pkg/config"
	"github.com/usmankhanpk/riverboard/pkg/feed"
	"github.com/usmankhanpk/riverboard/pkg/marker"
	"github.com/usmankhanpk/riverboard/pkg/pipeline"
	"github.com/usmankhanpk/riverboard/pkg/publish"
	"github.com/usmankhanpk/riverboard/pkg/report"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// defaultMarkerPath is where the last rendered timestamp is persisted.
	defaultMarkerPath = "last_report.txt"

	// defaultSchedule runs the watch loop at the top of every hour.
	defaultSchedule = "0 * * * *"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "riverboard",
		Short:        "Riverboard renders river flood situation reports",
		Long:         `Riverboard fetches the latest river gauge readings from the flood forecasting dashboard and renders them as a daily situation report image, grouping stations by river and flagging flood severity.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.stationsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner wired from the environment.
// The marker store is disabled when markerPath is empty.
func (c *CLI) newRunner(cfg *config.Config, markerPath string) *pipeline.Runner {
	var store marker.Store = marker.NewNullStore()
	if markerPath != "" {
		store = marker.NewFileStore(markerPath)
	}
	client := feed.NewClient(cfg.EndpointURL, cfg.APIKey, nil)
	return pipeline.NewRunner(client, store, nil, c.Logger)
}

// newPublisher builds the Telegram publisher when publication is requested.
// It errors when the bot token or chat id are not configured.
func newPublisher(cfg *config.Config) (publish.Publisher, error) {
	if !cfg.TelegramConfigured() {
		return nil, fmt.Errorf("publishing requires TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID to be set")
	}
	return publish.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadTable reads the station table from path, or returns the built-in
// table when path is empty.
func loadTable(path string) (report.Table, error) {
	if path == "" {
		return report.DefaultTable(), nil
	}
	return report.LoadTable(path)
}
