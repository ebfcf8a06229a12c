package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/note"
	"tableflip.dev/daygrid/pkg/task"
)

// ShortID is the number of id characters shown when ShowID is set.
const ShortID = 8

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", ShortID+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// JSON writes v as indented JSON.
func (pp *PrettyPrint) JSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(pp.out(), string(b))
	return err
}

// Agenda prints one row per task: mark, start, duration and headline.
func (pp *PrettyPrint) Agenda(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		mark, at, dur, title := t.Row()
		if t.Completed {
			title = done.Sprint(title)
		}
		if pp.ShowID {
			tbl.AddRow(y.Sprint(short(t.ID)), mark, at, dur, title)
		} else {
			tbl.AddRow(mark, at, dur, title)
		}
	}
	if pp.ShowID {
		tbl.RightAlign(2)
	} else {
		tbl.RightAlign(1)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Task prints the full detail of a single task.
func (pp *PrettyPrint) Task(t task.Task) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	tbl.AddRow(b.Sprint("ID"), t.ID)
	tbl.AddRow(b.Sprint("Title"), t.Title)
	if t.Description != "" {
		tbl.AddRow(b.Sprint("Description"), t.Description)
	}
	tbl.AddRow(b.Sprint("When"), fmt.Sprintf("%s %s", t.Start.Format("Mon Jan 2"), t.Span()))
	tbl.AddRow(b.Sprint("Status"), f.Sprint(t.Status()))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Metrics prints the completion and planning figures with bars.
func (pp *PrettyPrint) Metrics(m metrics.Day) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(b.Sprint("Completed"), m.Progress(), Bar(m.Completion, 20), f.Sprintf("%.0f%%", m.Completion))
	tbl.AddRow(b.Sprint("Planned"), m.Summary(), Bar(m.PlanningBar(), 20), f.Sprintf("%.0f%%", m.Planning))
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Note prints a day note, or a faint placeholder when there is none.
func (pp *PrettyPrint) Note(n note.Entry, ok bool) {
	if !ok || strings.TrimSpace(n.Content) == "" {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " no note\n\n")
		return
	}
	_, _ = fmt.Fprintln(pp.out(), n.Content)
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Report prints completed tasks grouped by day.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	_, _ = color.New(color.Bold).Fprintf(pp.out(), "Completed %s to %s\n\n", r.Since, r.Until)
	if len(r.Sections) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Fprint(pp.out(), " nothing completed\n\n")
		return
	}
	for _, s := range r.Sections {
		pp.TitleWithCount(fmt.Sprintf("%s %s", s.Day, s.Day.Time().Format("Monday")), len(s.Completed))
		pp.Agenda(s.Completed...)
	}
	_, _ = color.New(color.Faint).Fprintf(pp.out(), "%d completed\n", r.Total)
}

// Bar renders pct (0-100) as a fixed width meter.
func Bar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func short(id string) string {
	if len(id) > ShortID {
		return id[:ShortID]
	}
	return id
}
