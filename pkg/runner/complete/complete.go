// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Complete flips a task between complete and incomplete.
type Complete struct {
	App  *app.Service
	ID   string
	JSON bool
	Out  io.Writer
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not complete, no persistence")
	}

	t, err := n.App.Toggle(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(t)
	}
	day := timeutil.DayOf(t.Start.Time)
	list := n.App.Agenda(ctx, day)
	pp.NewLine()
	pp.TitleWithCount(day.String(), len(list))
	pp.Agenda(list...)
	pp.Metrics(n.App.Metrics(ctx, day))
	return nil
}
