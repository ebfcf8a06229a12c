package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/add"
	"tableflip.dev/daygrid/pkg/snake"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	on := &options.OnOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Schedule a task",
		Example: `
daygrid add write the quarterly report --at 9:30 --duration 1h30m
daygrid add standup --on tomorrow --at 10am --duration 15m
daygrid add -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if !io.Interactive && strings.TrimSpace(strings.Join(args, " ")) == "" {
				return snake.ValidateTitle("")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			a := add.Add{
				App:         s.App,
				Title:       strings.Join(args, " "),
				Description: to.Description,
				JSON:        oo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			if io.Interactive {
				a.Wizard = &snake.Wizard{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Now: now()}
			} else {
				day, err := on.GetDay(now())
				if err != nil {
					return oo.HandleError(err)
				}
				if a.Start, err = to.Start(day, now()); err != nil {
					return oo.HandleError(err)
				}
				if a.Duration, err = to.Minutes(); err != nil {
					return oo.HandleError(err)
				}
			}
			err = a.Do(cmd.Context())
			if snake.Aborted(err) {
				return nil
			}
			return oo.HandleError(err)
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOnArgs(cmd, on)
	options.InteractiveArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
