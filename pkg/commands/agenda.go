package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	ids := &options.IDOptions{}
	var window bool

	cmd := &cobra.Command{
		Use:     "agenda",
		Aliases: []string{"ls", "today"},
		Short:   "Print the tasks, metrics and note of a day",
		Example: `
daygrid agenda
daygrid agenda --on tomorrow -k
daygrid agenda --window
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

			a := agenda.Agenda{
				App:    s.App,
				Day:    day,
				Now:    now(),
				ShowID: ids.ShowID,
				Window: window,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddShowIDArgs(cmd, ids)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&window, "window", "w", false,
		"Print the three day calendar grid starting at the day.")

	topLevel.AddCommand(cmd)
}
