// Package carryover provides the runner that moves unfinished tasks forward.
package carryover

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Carryover moves the incomplete tasks of From onto To.
type Carryover struct {
	App  *app.Service
	From timeutil.Day
	To   timeutil.Day
	JSON bool
	Out  io.Writer
}

// Do runs the migration and prints what moved.
func (n *Carryover) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not carry over, no persistence")
	}
	if n.From == n.To {
		return errors.New("source and target day are the same")
	}

	result, err := n.App.Carryover(ctx, n.From, n.To)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(result)
	}
	pp.TitleWithCount(fmt.Sprintf("Moved %s → %s", n.From, n.To), len(result.Moved))
	pp.Agenda(result.Moved...)
	if len(result.Skipped) > 0 {
		pp.TitleWithCount(color.New(color.FgYellow).Sprint("Skipped, target slot taken"), len(result.Skipped))
		pp.Agenda(result.Skipped...)
	}
	return nil
}
