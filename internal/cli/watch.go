package cli

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/usmankhanpk/riverboard/pkg/config"
	"github.com/usmankhanpk/riverboard/pkg/publish"
)

// watchCommand creates the watch command. It runs generate immediately,
// then on a cron schedule until the context is cancelled.
func (c *CLI) watchCommand() *cobra.Command {
	opts := generateOpts{
		outDir: ".",
		marker: defaultMarkerPath,
	}
	schedule := defaultSchedule

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Render the report on a schedule until interrupted",
		Long: `Watch polls the flood forecasting dashboard on a cron schedule and
renders a new report image whenever the reporting timestamp changes. The
first run happens immediately on startup. Stop with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return c.runWatch(cmd, cfg, &opts, schedule)
		},
	}

	cmd.Flags().StringVar(&opts.stations, "stations", "", "station table TOML file (default: built-in table)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", opts.outDir, "directory to write report images to")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "logo image path (default: ndma_logo.png)")
	cmd.Flags().StringVar(&opts.marker, "marker", opts.marker, "marker file for change detection (empty disables)")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "send rendered images to the configured Telegram chat")
	cmd.Flags().StringVar(&schedule, "schedule", schedule, "cron expression for polling the dashboard")

	return cmd
}

// runWatch starts the polling loop. Failures of individual runs are logged
// and the loop keeps going; only a bad schedule or a bad configuration
// aborts the command.
func (c *CLI) runWatch(cmd *cobra.Command, cfg *config.Config, opts *generateOpts, schedule string) error {
	// One publisher for the whole loop; bot authorization happens once,
	// and misconfiguration aborts before any run fires.
	var pub publish.Publisher
	if opts.publish {
		p, err := newPublisher(cfg)
		if err != nil {
			return err
		}
		pub = p
	}

	run := func() {
		if err := c.runGenerate(cmd, cfg, opts, pub); err != nil {
			c.Logger.Error("run failed", "err", err)
		}
	}

	cr := cron.New()
	if _, err := cr.AddFunc(schedule, run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	printInfo("Watching dashboard on schedule %q", schedule)
	run()

	cr.Start()
	defer cr.Stop()

	<-cmd.Context().Done()
	printInfo("Shutting down")
	return nil
}
