package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	ids := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "complete <task id>",
		Aliases: []string{"done", "toggle"},
		Short:   "Toggle a task between complete and incomplete",
		Example: `
daygrid complete 3f2a9c1e
`,
		Args:              options.IDFromArgs(ids),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			c := complete.Complete{
				App:  s.App,
				ID:   ids.ID,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(c.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
