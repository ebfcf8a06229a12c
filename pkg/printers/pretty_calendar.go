package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/calendar/viewmodel"
	"tableflip.dev/daygrid/pkg/task"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid with days that have scheduled tasks in bold.
func (pp *PrettyPrint) Month(then time.Time, tasks ...task.Task) {
	count := make([]int, DaysIn(then))
	for _, t := range tasks {
		at := t.Start.Local()
		if at.Year() == then.Year() && at.Month() == then.Month() {
			count[at.Day()-1]++
		}
	}
	pp.PrintMonthCount(then, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

// Window prints the calendar window as a text grid, one column per day and
// one row per occupied or daylight slot.
func (pp *PrettyPrint) Window(w viewmodel.Window) {
	b := color.New(color.Bold, color.Underline)
	today := color.New(color.Bold, color.Underline, color.FgHiCyan)
	f := color.New(color.Faint)
	now := color.New(color.FgHiRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 28

	header := []interface{}{""}
	for _, c := range w.Columns {
		h := fmt.Sprintf("%s %s", c.Label, c.DateLabel)
		if c.IsToday {
			header = append(header, today.Sprint(h))
		} else {
			header = append(header, b.Sprint(h))
		}
	}
	tbl.AddRow(header...)

	for i := 0; i < calendar.SlotsPerDay; i++ {
		cells := make([]interface{}, 0, len(w.Columns)+1)
		show := false
		for _, c := range w.Columns {
			cell, busy := windowCell(c, i)
			if busy || c.Slots[i].Daytime {
				show = true
			}
			if c.Marker != nil && c.Marker.Slot == i {
				cell = now.Sprint("▸ ") + cell
				show = true
			}
			cells = append(cells, cell)
		}
		if !show {
			continue
		}
		tbl.AddRow(append([]interface{}{f.Sprint(calendar.SlotLabel(i))}, cells...)...)
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out(), "")
}

func windowCell(c viewmodel.Column, slot int) (string, bool) {
	for _, blk := range c.Blocks {
		switch {
		case blk.Slot == slot:
			mark, _, _, title := blk.Task.Row()
			return mark + " " + title, true
		case slot > blk.Slot && slot < blk.Slot+blk.Slots:
			return "│", true
		}
	}
	return "", false
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
