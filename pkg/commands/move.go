package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/move"
	"tableflip.dev/daygrid/pkg/timeutil"
)

func addMove(topLevel *cobra.Command) {
	ids := &options.IDOptions{}
	to := &options.TaskOptions{}
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "move <task id>",
		Short: "Reschedule a task to another day or time",
		Long: options.Wrap80(`Move keeps the duration and refuses a target slot another task
already starts in. Without --on the task stays on its current day.`),
		Example: `
daygrid move 3f2a9c1e --at 14:00
daygrid move 3f2a9c1e --on tomorrow --at 9am
`,
		Args:              options.IDFromArgs(ids),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(to.At) == "" && strings.TrimSpace(on.OnString) == "" {
				return oo.HandleError(errors.New("give --at, --on or both"))
			}
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			t, err := s.App.Resolve(ids.ID)
			if err != nil {
				return oo.HandleError(err)
			}
			day := timeutil.DayOf(t.Start.Time)
			if on.OnString != "" {
				if day, err = on.GetDay(now()); err != nil {
					return oo.HandleError(err)
				}
			}
			if to.At == "" {
				to.At = t.Start.Format("15:04")
			}
			start, err := to.Start(day, now())
			if err != nil {
				return oo.HandleError(err)
			}

			m := move.Move{
				App:   s.App,
				ID:    t.ID,
				Start: &start,
				JSON:  oo.JSON,
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	options.AddAtArgs(cmd, to)
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addResize(topLevel *cobra.Command) {
	ids := &options.IDOptions{}
	var by string

	cmd := &cobra.Command{
		Use:   "resize <task id>",
		Short: "Grow or shrink a task",
		Long:  options.Wrap80(`Resize changes the duration by --by. Durations never drop below 30 minutes.`),
		Example: `
daygrid resize 3f2a9c1e --by 30m
daygrid resize 3f2a9c1e --by=-1h
`,
		Args:              options.IDFromArgs(ids),
		ValidArgsFunction: taskCompletions,
		RunE: func(cmd *cobra.Command, _ []string) error {
			delta, err := parseDelta(by)
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			m := move.Move{
				App:   s.App,
				ID:    ids.ID,
				Delta: delta,
				JSON:  oo.JSON,
				Out:   cmd.OutOrStdout(),
			}
			return oo.HandleError(m.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&by, "by", "30m", "Signed amount to change the duration by, example: --by=-30m.")
	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

// parseDelta reads a signed duration such as "30m" or "-1h".
func parseDelta(s string) (int, error) {
	s = strings.TrimSpace(s)
	sign := 1
	if strings.HasPrefix(s, "-") {
		sign, s = -1, s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	m, err := timeutil.ParseMinutes(s)
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return 0, errors.New("--by must be non-zero")
	}
	return sign * m, nil
}
