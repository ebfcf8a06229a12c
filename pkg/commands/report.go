package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/report"
)

func addReport(topLevel *cobra.Command) {
	var days int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recently completed tasks grouped by day",
		Long: `Report lists completed tasks grouped by day, most recent first.

Examples:
  daygrid report
  daygrid report --days 14
  daygrid report --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			r := report.Report{
				App:  s.App,
				Days: days,
				Now:  now(),
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "number of days to include, counting today")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
