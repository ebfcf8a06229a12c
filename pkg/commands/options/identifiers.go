package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}

// IDFromArgs is a cobra.PositionalArgs that takes the task id, or a unique
// prefix of it, from the first argument.
func IDFromArgs(o *IDOptions) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < 1 || strings.TrimSpace(args[0]) == "" {
			return errors.New("requires a task id")
		}
		o.ID = strings.TrimSpace(args[0])
		return nil
	}
}
