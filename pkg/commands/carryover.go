package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/carryover"
)

func addCarryover(topLevel *cobra.Command) {
	from := &options.OnOptions{}
	var to string

	cmd := &cobra.Command{
		Use:     "carryover",
		Aliases: []string{"migrate"},
		Short:   "Move unfinished tasks from one day to another",
		Long: options.Wrap80(`Carryover moves every incomplete task of the source day to the same
clock time on the target day. Tasks whose target slot is already taken stay
where they are and are listed as skipped.`),
		Example: `
daygrid carryover
daygrid carryover --on 2024-6-1 --to today
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := app.Yesterday(now())
			if from.OnString != "" {
				var err error
				if source, err = from.GetDay(now()); err != nil {
					return oo.HandleError(err)
				}
			}
			target, err := (&options.OnOptions{OnString: to}).GetDay(now())
			if err != nil {
				return oo.HandleError(err)
			}

			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			c := carryover.Carryover{
				App:  s.App,
				From: source,
				To:   target,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&from.OnString, "on", "", "Source day. Defaults to yesterday.")
	cmd.Flags().StringVar(&to, "to", "today", "Target day.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
