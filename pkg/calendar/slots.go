// Package calendar holds the slot arithmetic behind the three-day grid: how a
// wall-clock instant maps to a 30-minute row, which rows are daylight and
// which anchors are taken.
package calendar

import (
	"fmt"
	"time"

	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

const (
	// SlotMinutes is the length of one grid row.
	SlotMinutes = task.SlotMinutes
	// SlotsPerHour is 60 / SlotMinutes.
	SlotsPerHour = 60 / SlotMinutes
	// SlotsPerDay covers a full 24 hour day.
	SlotsPerDay = 24 * SlotsPerHour
	// SlotHeight is the pixel height of one row in the reference layout.
	SlotHeight = 40
	// WindowDays is the number of columns in the rolling view.
	WindowDays = 3
)

// SlotIndex maps t to its row, rounding minutes down to the slot boundary.
func SlotIndex(t time.Time) int {
	return SlotsPerHour*t.Hour() + t.Minute()/SlotMinutes
}

// HeightSlots is the number of rows a duration covers, rounded up.
func HeightSlots(duration int) int {
	if duration <= 0 {
		return 0
	}
	return (duration + SlotMinutes - 1) / SlotMinutes
}

// SlotClock returns the hour and minute a row starts at.
func SlotClock(index int) (hour, minute int) {
	return index / SlotsPerHour, (index % SlotsPerHour) * SlotMinutes
}

// SlotLabel renders the start of a row as "HH:MM".
func SlotLabel(index int) string {
	h, m := SlotClock(index)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Daylight returns the fixed sunrise and sunset hours for month: long days
// from March through September, short days otherwise.
func Daylight(month time.Month) (sunrise, sunset int) {
	if month >= time.March && month <= time.September {
		return 6, 20
	}
	return 7, 17
}

// IsDaytime classifies a row against a sunrise/sunset pair.
func IsDaytime(index, sunrise, sunset int) bool {
	h, _ := SlotClock(index)
	return h >= sunrise && h < sunset
}

// Anchor is the (day, slot-start) pair a start time resolves to.
type Anchor struct {
	Day  timeutil.Day
	Slot int
}

// AnchorOf resolves t to its anchor.
func AnchorOf(t time.Time) Anchor {
	t = t.Local()
	return Anchor{Day: timeutil.DayOf(t), Slot: SlotIndex(t)}
}

// Time is the instant the anchored slot starts.
func (a Anchor) Time() time.Time {
	h, m := SlotClock(a.Slot)
	return a.Day.At(h, m)
}

// Valid reports whether the slot lies inside a day.
func (a Anchor) Valid() bool {
	return a.Slot >= 0 && a.Slot < SlotsPerDay
}

func (a Anchor) String() string {
	return fmt.Sprintf("%s %s", a.Day, SlotLabel(a.Slot))
}

// Occupant returns the task whose start is exactly the anchor's day, hour and
// minute. Tasks starting mid-slot do not claim the slot. The slot clock is
// compared directly so a wall-clock time skipped by a DST change matches
// nothing.
func Occupant(tasks []task.Task, a Anchor) (task.Task, bool) {
	h, m := SlotClock(a.Slot)
	return occupant(tasks, a.Day, h, m, "")
}

// OccupantAt returns a task other than self that starts on the same local
// day, hour and minute as start.
func OccupantAt(tasks []task.Task, start time.Time, self string) (task.Task, bool) {
	start = start.Local()
	return occupant(tasks, timeutil.DayOf(start), start.Hour(), start.Minute(), self)
}

func occupant(tasks []task.Task, day timeutil.Day, hour, minute int, self string) (task.Task, bool) {
	for _, t := range tasks {
		if self != "" && t.ID == self {
			continue
		}
		start := t.Start.Local()
		if timeutil.DayOf(start) == day && start.Hour() == hour && start.Minute() == minute {
			return t, true
		}
	}
	return task.Task{}, false
}

// Occupied reports whether some task is anchored at a.
func Occupied(tasks []task.Task, a Anchor) bool {
	_, ok := Occupant(tasks, a)
	return ok
}

// OccupiedAt reports whether some task starts exactly at start.
func OccupiedAt(tasks []task.Task, start time.Time) bool {
	_, ok := OccupantAt(tasks, start, "")
	return ok
}
