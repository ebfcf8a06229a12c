// Package key provides the runner that prints the terminal UI keymap.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	teaui "tableflip.dev/daygrid/pkg/tui/app"
)

// Key prints the keyboard legend of the calendar view.
type Key struct {
	Out io.Writer
}

// Do renders the keymap.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Action"))
	for _, b := range teaui.Bindings {
		tbl.AddRow(b.Keys, b.Action)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
