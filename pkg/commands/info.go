package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about configuration and where data is stored.",
		Example: `
daygrid info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()
			i := info.Info{
				Settings: s.Settings,
				App:      s.App,
				Out:      cmd.OutOrStdout(),
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
