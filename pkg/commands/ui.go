package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/runner/ui"
	"tableflip.dev/daygrid/pkg/tui/theme"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the calendar in the terminal",
		Example: `
daygrid ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command) error {
	s, err := openService()
	if err != nil {
		return err
	}
	defer s.Close()
	i := ui.UI{App: s.App, Theme: theme.Named(s.Settings.Theme)}
	return i.Do(cmd.Context())
}
