// Package remove provides the runner that deletes a task.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Remove deletes a task by id or unique prefix.
type Remove struct {
	App  *app.Service
	ID   string
	JSON bool
	Out  io.Writer
}

// Do deletes the task and prints what remains of its day.
func (n *Remove) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not delete, no persistence")
	}

	t, err := n.App.Delete(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(map[string]any{"deleted": t})
	}
	day := timeutil.DayOf(t.Start.Time)
	list := n.App.Agenda(ctx, day)
	pp.TitleWithCount(day.String(), len(list))
	pp.Agenda(list...)
	return nil
}
