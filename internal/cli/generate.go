package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/usmankhanpk/riverboard/pkg/config"
	"github.com/usmankhanpk/riverboard/pkg/pipeline"
	"github.com/usmankhanpk/riverboard/pkg/publish"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	stations string // station table TOML path (empty uses the built-in table)
	outDir   string // directory the PNG is written to
	logo     string // logo asset path override
	marker   string // marker file path ("" disables change detection)
	force    bool   // render even when the timestamp has not changed
	publish  bool   // send the finished image to Telegram
}

// generateCommand creates the generate command. It performs one complete
// run: fetch, change gate, layout, render, write.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		outDir: ".",
		marker: defaultMarkerPath,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fetch the latest readings and render the report image",
		Long: `Generate fetches the current river gauge readings from the flood
forecasting dashboard, compares the reporting timestamp against the marker
file, and renders the situation report image when the data is new.

Credentials are read from FFD_API_URL and FFD_API_KEY (a .env file in the
working directory is honored).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			var pub publish.Publisher
			if opts.publish {
				if pub, err = newPublisher(cfg); err != nil {
					return err
				}
			}
			return c.runGenerate(cmd, cfg, &opts, pub)
		},
	}

	cmd.Flags().StringVar(&opts.stations, "stations", "", "station table TOML file (default: built-in table)")
	cmd.Flags().StringVarP(&opts.outDir, "out-dir", "o", opts.outDir, "directory to write the report image to")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "logo image path (default: ndma_logo.png)")
	cmd.Flags().StringVar(&opts.marker, "marker", opts.marker, "marker file for change detection (empty disables)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "render even when the report timestamp is unchanged")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "send the rendered image to the configured Telegram chat")

	return cmd
}

// runGenerate executes a single pipeline run with the resolved options. The
// publisher is constructed by the caller so recurring runs can share one
// authorized bot instead of re-authorizing every tick.
func (c *CLI) runGenerate(cmd *cobra.Command, cfg *config.Config, opts *generateOpts, pub publish.Publisher) error {
	table, err := loadTable(opts.stations)
	if err != nil {
		return fmt.Errorf("load station table: %w", err)
	}

	pipeOpts := pipeline.Options{
		Table:     table,
		OutDir:    opts.outDir,
		LogoPath:  opts.logo,
		Force:     opts.force,
		Publisher: pub,
	}

	runner := c.newRunner(cfg, opts.marker)
	result, err := runner.Run(cmd.Context(), pipeOpts)
	if err != nil {
		return err
	}

	if result.Skipped {
		printInfo("Report unchanged since %s", result.Timestamp)
		return nil
	}

	printSuccess("Rendered report for %s", result.Timestamp)
	printFile(result.OutPath)
	printStats(result.Rows, result.Stats)
	return nil
}
