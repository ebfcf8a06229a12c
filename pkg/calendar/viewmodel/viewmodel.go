// Package viewmodel derives the renderable three-day window from the task
// list. It holds no state and never writes back to the store.
package viewmodel

import (
	"sort"
	"time"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

const (
	dateFormat    = "Jan 2"
	weekdayFormat = "Monday"
)

// Window is the visible slice of the calendar.
type Window struct {
	Offset  int
	Sunrise int
	Sunset  int
	Columns []Column
}

// Column is one day of the window.
type Column struct {
	Day       timeutil.Day
	Label     string
	DateLabel string
	IsToday   bool
	Slots     []Slot
	Blocks    []Block
	// Marker is set only on the column for the real current date.
	Marker *Marker
}

// Slot is one 30 minute row of a column.
type Slot struct {
	Index    int
	Label    string
	Daytime  bool
	Occupied bool
	Anchor   calendar.Anchor
}

// Block is a task positioned on the grid.
type Block struct {
	Task   task.Task
	Slot   int
	Slots  int
	Top    int
	Height int
}

// Marker locates the live clock within today's column.
type Marker struct {
	Slot int
	Top  int
}

// Option customises Build behaviour.
type Option func(*buildOptions)

// WithDays overrides the number of columns.
func WithDays(n int) Option {
	return func(opts *buildOptions) {
		if n > 0 {
			opts.days = n
		}
	}
}

// WithDaylight pins sunrise and sunset instead of deriving them from the
// current month.
func WithDaylight(sunrise, sunset int) Option {
	return func(opts *buildOptions) {
		opts.sunrise, opts.sunset = sunrise, sunset
		opts.daylightSet = true
	}
}

type buildOptions struct {
	days            int
	sunrise, sunset int
	daylightSet     bool
}

// Build lays out the window starting offset days from the date of now.
func Build(tasks []task.Task, offset int, now time.Time, opts ...Option) Window {
	config := &buildOptions{days: calendar.WindowDays}
	for _, opt := range opts {
		opt(config)
	}
	if !config.daylightSet {
		config.sunrise, config.sunset = calendar.Daylight(now.Month())
	}

	today := timeutil.DayOf(now)
	w := Window{
		Offset:  offset,
		Sunrise: config.sunrise,
		Sunset:  config.sunset,
		Columns: make([]Column, 0, config.days),
	}
	for i := 0; i < config.days; i++ {
		rel := offset + i
		day := today.AddDays(rel)
		col := Column{
			Day:       day,
			Label:     label(rel, day),
			DateLabel: day.Time().Format(dateFormat),
			IsToday:   day == today,
		}
		col.Blocks = blocksFor(tasks, day)
		col.Slots = slotsFor(tasks, day, config.sunrise, config.sunset)
		if col.IsToday {
			col.Marker = MarkerAt(now)
		}
		w.Columns = append(w.Columns, col)
	}
	return w
}

// Position computes a task's row and height from its start and duration. The
// stored start is never modified.
func Position(t task.Task) Block {
	slot := calendar.SlotIndex(t.Start.Local())
	slots := calendar.HeightSlots(t.Duration)
	return Block{
		Task:   t,
		Slot:   slot,
		Slots:  slots,
		Top:    slot * calendar.SlotHeight,
		Height: slots * calendar.SlotHeight,
	}
}

// MarkerAt positions the current-time line using the slot formula plus the
// fraction of the slot already elapsed.
func MarkerAt(now time.Time) *Marker {
	slot := calendar.SlotIndex(now)
	into := now.Minute() % calendar.SlotMinutes
	return &Marker{
		Slot: slot,
		Top:  slot*calendar.SlotHeight + into*calendar.SlotHeight/calendar.SlotMinutes,
	}
}

// TasksOn filters tasks starting on day, keeping store order.
func TasksOn(tasks []task.Task, day timeutil.Day) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if timeutil.DayOf(t.Start.Time) == day {
			out = append(out, t)
		}
	}
	return out
}

func blocksFor(tasks []task.Task, day timeutil.Day) []Block {
	dayTasks := TasksOn(tasks, day)
	blocks := make([]Block, 0, len(dayTasks))
	for _, t := range dayTasks {
		blocks = append(blocks, Position(t))
	}
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Slot < blocks[j].Slot
	})
	return blocks
}

func slotsFor(tasks []task.Task, day timeutil.Day, sunrise, sunset int) []Slot {
	dayTasks := TasksOn(tasks, day)
	slots := make([]Slot, calendar.SlotsPerDay)
	for i := range slots {
		a := calendar.Anchor{Day: day, Slot: i}
		slots[i] = Slot{
			Index:    i,
			Label:    calendar.SlotLabel(i),
			Daytime:  calendar.IsDaytime(i, sunrise, sunset),
			Occupied: calendar.Occupied(dayTasks, a),
			Anchor:   a,
		}
	}
	return slots
}

func label(rel int, day timeutil.Day) string {
	switch rel {
	case -1:
		return "Yesterday"
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return day.Time().Format(weekdayFormat)
	}
}
