package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	ids := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Example: `
daygrid delete 3f2a9c1e
`,
		Args:              options.IDFromArgs(ids),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			r := remove.Remove{
				App:  s.App,
				ID:   ids.ID,
				JSON: oo.JSON,
				Out:  cmd.OutOrStdout(),
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
