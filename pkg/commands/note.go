package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/commands/options"
	"tableflip.dev/daygrid/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var (
		set      bool
		appendTo bool
	)

	cmd := &cobra.Command{
		Use:   "note [text]",
		Short: "Read or write the journal note of a day",
		Example: `
daygrid note
daygrid note --append shipped the **report**
daygrid note --set --on yesterday "quiet day"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := on.GetDay(now())
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openService()
			if err != nil {
				return oo.HandleError(err)
			}
			defer s.Close()

			n := note.Note{
				App:    s.App,
				Day:    day,
				Append: appendTo,
				JSON:   oo.JSON,
				Out:    cmd.OutOrStdout(),
			}
			if set || appendTo || len(args) > 0 {
				content := strings.Join(args, " ")
				n.Content = &content
			}
			return oo.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&set, "set", false, "Replace the note with the arguments, even when empty.")
	cmd.Flags().BoolVarP(&appendTo, "append", "a", false, "Add the arguments as a new line instead of replacing the note.")

	topLevel.AddCommand(cmd)
}
