package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/metrics"
)

func addMetrics(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var days int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show completion and daylight planning for a day",
		Example: `
daygrid metrics
daygrid metrics --on yesterday --days 3 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := on.GetDay(now())
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			m := metrics.Metrics{
				App:  s.App,
				From: day,
				Days: days,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().IntVarP(&days, "days", "n", 1, "Number of consecutive days to show.")

	topLevel.AddCommand(cmd)
}
