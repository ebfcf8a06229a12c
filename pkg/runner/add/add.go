// Package add provides the runner that schedules a new task.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/snake"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Add stores a task and reprints the agenda of its day.
type Add struct {
	App         *app.Service
	Title       string
	Description string
	Start       time.Time
	Duration    int

	// Wizard, when set, replaces the fields above with prompted answers.
	Wizard *snake.Wizard

	JSON bool
	Out  io.Writer
}

// Do executes the add.
func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no persistence")
	}

	if n.Wizard != nil {
		a, err := n.Wizard.Run()
		if err != nil {
			return err
		}
		n.Title, n.Description, n.Start, n.Duration = a.Title, a.Description, a.Start, a.Duration
	}

	t, err := n.App.Add(ctx, n.Title, n.Description, n.Start, n.Duration)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	if n.JSON {
		return pp.JSON(t)
	}
	day := timeutil.DayOf(t.Start.Time)
	list := n.App.Agenda(ctx, day)
	pp.TitleWithCount(day.String(), len(list))
	pp.Agenda(list...)
	return nil
}
