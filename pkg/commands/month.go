package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var count int

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print month calendars with scheduled days in bold",
		Example: `
daygrid month
daygrid month --on 2024-1-1 --count 12
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day, err := on.GetDay(now())
			if err != nil {
				return err
			}
			s, err := openService()
			if err != nil {
				return err
			}
			defer s.Close()

			m := month.Month{App: s.App, From: day, Count: count, Out: cmd.OutOrStdout()}
			return m.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of months to print.")

	topLevel.AddCommand(cmd)
}
