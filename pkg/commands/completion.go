package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/timeutil"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(daygrid completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(daygrid completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// taskCompletions offers short task ids described by day and title.
func taskCompletions(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	p, err := store.Load(nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	svc, err := app.Open(p, nil, nil)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(svc, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeIDs(svc *app.Service, toComplete string) []string {
	var out []string
	for _, t := range svc.Tasks.All() {
		if !strings.HasPrefix(t.ID, toComplete) {
			continue
		}
		id := t.ID
		if len(id) > printers.ShortID {
			id = id[:printers.ShortID]
		}
		out = append(out, fmt.Sprintf("%s\t%s %s", id, timeutil.DayOf(t.Start.Time), t.Headline()))
	}
	return out
}
