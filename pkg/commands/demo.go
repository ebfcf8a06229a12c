package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

func addDemo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:    "demo",
		Short:  "Fill yesterday, today and tomorrow with sample tasks",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			defer s.Close()

			added, err := s.App.Seed(cmd.Context(), timeutil.DayOf(now()))
			if err != nil {
				return err
			}
			pp := printers.PrettyPrint{ShowID: true, Out: cmd.OutOrStdout()}
			pp.TitleWithCount("Added", len(added))
			pp.Agenda(added...)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
