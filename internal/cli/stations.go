package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// stationsCommand creates the stations command for inspecting the station
// table that drives the report layout.
func (c *CLI) stationsCommand() *cobra.Command {
	var stationsPath string

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "Print the configured station table",
		Long: `Stations prints the station table in row order, with the river groups
that receive connector lines on the report. Pass --stations to inspect a
custom TOML table instead of the built-in one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := loadTable(stationsPath)
			if err != nil {
				return fmt.Errorf("load station table: %w", err)
			}

			grouped := make(map[int]int) // station index -> group number
			for gi, group := range table.Groups {
				for _, idx := range group {
					grouped[idx] = gi + 1
				}
			}

			fmt.Println(StyleTitle.Render("Station table"))
			for i, s := range table.Stations {
				group := StyleDim.Render("ungrouped")
				if g, ok := grouped[i]; ok {
					group = StyleHighlight.Render(fmt.Sprintf("group %d", g))
				}
				fmt.Printf("%s  %s %s\n",
					StyleNumber.Render(fmt.Sprintf("%2d", i)),
					StyleValue.Render(fmt.Sprintf("%-28s", s.Title())),
					group)
				printDetail("api=%q short=%q", s.APIName, s.ShortName)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stationsPath, "stations", "", "station table TOML file (default: built-in table)")

	return cmd
}
