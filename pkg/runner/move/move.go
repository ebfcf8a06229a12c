// Package move provides the runners that reschedule and resize tasks.
package move

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/task"
)

// Move reschedules a task to Start and optionally resizes it by Delta
// minutes.
type Move struct {
	App   *app.Service
	ID    string
	Start *time.Time
	Delta int
	JSON  bool
	Out   io.Writer
}

// Do applies the move then the resize.
func (n *Move) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not move, no persistence")
	}
	if n.Start == nil && n.Delta == 0 {
		return errors.New("nothing to change: give a new start time or a resize")
	}

	var (
		t   task.Task
		err error
	)
	if n.Start != nil {
		if t, err = n.App.Move(ctx, n.ID, *n.Start); err != nil {
			return err
		}
		n.ID = t.ID
	}
	if n.Delta != 0 {
		if t, err = n.App.Resize(ctx, n.ID, n.Delta); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(t)
	}
	pp.Task(t)
	return nil
}
