// Package metrics computes the day completion and daylight planning ratios
// shown next to the calendar.
package metrics

import (
	"fmt"
	"strconv"

	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Day summarises the tasks starting on one date.
type Day struct {
	Date           timeutil.Day `json:"date"`
	Total          int          `json:"totalTasks"`
	Completed      int          `json:"completedTasks"`
	Remaining      int          `json:"remainingTasks"`
	Completion     float64      `json:"completionPercentage"`
	ScheduledHours float64      `json:"totalScheduledHours"`
	DaylightHours  int          `json:"daylightHours"`
	// Planning is unclamped. Use PlanningBar for display.
	Planning float64 `json:"planningPercentage"`
}

// ForDay derives the metrics for date from tasks and a sunrise/sunset pair.
func ForDay(tasks []task.Task, date timeutil.Day, sunrise, sunset int) Day {
	d := Day{Date: date, DaylightHours: sunset - sunrise}
	minutes := 0
	for _, t := range tasks {
		if timeutil.DayOf(t.Start.Time) != date {
			continue
		}
		d.Total++
		if t.Completed {
			d.Completed++
		}
		minutes += t.Duration
	}
	d.Remaining = d.Total - d.Completed
	if d.Total > 0 {
		d.Completion = float64(d.Completed) / float64(d.Total) * 100
	}
	d.ScheduledHours = float64(minutes) / 60
	if d.DaylightHours > 0 {
		d.Planning = d.ScheduledHours / float64(d.DaylightHours) * 100
	}
	return d
}

// PlanningBar is the planning percentage capped at 100.
func (d Day) PlanningBar() float64 {
	if d.Planning > 100 {
		return 100
	}
	return d.Planning
}

// Summary renders the raw hours, e.g. "1.5h of 14h daylight".
func (d Day) Summary() string {
	return fmt.Sprintf("%sh of %dh daylight", strconv.FormatFloat(d.ScheduledHours, 'f', -1, 64), d.DaylightHours)
}

// Progress renders "completed/total".
func (d Day) Progress() string {
	return fmt.Sprintf("%d/%d", d.Completed, d.Total)
}
