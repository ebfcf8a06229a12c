// Package agenda provides the runner that prints the tasks of a day.
package agenda

import (
	"context"
	"errors"
	"io"
	"math"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/calendar/viewmodel"
	"tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/note"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Agenda prints a day, or with Window the calendar window starting at Day.
type Agenda struct {
	App    *app.Service
	Day    timeutil.Day
	Now    time.Time
	ShowID bool
	Window bool
	JSON   bool
	Out    io.Writer
}

type dayJSON struct {
	Date    timeutil.Day `json:"date"`
	Tasks   []task.Task  `json:"tasks"`
	Metrics metrics.Day  `json:"metrics"`
	Note    *note.Entry  `json:"note,omitempty"`
}

// Do prints the agenda.
func (n *Agenda) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no persistence")
	}
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}

	list := n.App.Agenda(ctx, n.Day)
	m := n.App.Metrics(ctx, n.Day)
	entry, hasNote := n.App.PeekNote(n.Day)

	if n.JSON {
		out := dayJSON{Date: n.Day, Tasks: list, Metrics: m}
		if out.Tasks == nil {
			out.Tasks = []task.Task{}
		}
		if hasNote {
			out.Note = &entry
		}
		return pp.JSON(out)
	}

	if n.Window {
		offset := int(math.Round(n.Day.Time().Sub(timeutil.DayOf(now).Time()).Hours() / 24))
		pp.Window(viewmodel.Build(n.App.Tasks.All(), offset, now))
		return nil
	}

	pp.TitleWithCount(title(n.Day, timeutil.DayOf(now)), len(list))
	pp.Agenda(list...)
	pp.Metrics(m)
	if hasNote {
		pp.Title("Note")
		pp.Note(entry, true)
	}
	return nil
}

func title(day, today timeutil.Day) string {
	label := day.Time().Format("Monday, Jan 2")
	switch day {
	case today:
		return "Today · " + label
	case today.AddDays(1):
		return "Tomorrow · " + label
	case today.AddDays(-1):
		return "Yesterday · " + label
	}
	return label
}
