package app

import (
	"context"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

type sample struct {
	rel          int
	hour, minute int
	duration     int
	title        string
	description  string
	done         bool
}

var samples = []sample{
	{-1, 15, 0, 60, "Ship release", "Tag, build and announce.", true},
	{0, 7, 0, 30, "Morning run", "", true},
	{0, 9, 0, 90, "Write report", "Quarterly numbers plus the **hiring** update.", false},
	{0, 10, 30, 30, "Standup", "", false},
	{0, 12, 0, 60, "Lunch", "", false},
	{0, 14, 0, 60, "Review PRs", "Start with the oldest.", false},
	{0, 17, 0, 30, "Plan tomorrow", "", false},
	{1, 9, 30, 60, "Dentist", "Bring the insurance card.", false},
}

// Seed fills the days around day with sample tasks. Slots that are already
// taken are left alone.
func (s *Service) Seed(ctx context.Context, day timeutil.Day) ([]task.Task, error) {
	var added []task.Task
	for _, smp := range samples {
		if err := ctx.Err(); err != nil {
			return added, err
		}
		start := day.AddDays(smp.rel).At(smp.hour, smp.minute)
		if calendar.OccupiedAt(s.Tasks.All(), start) {
			continue
		}
		t := task.New(smp.title, start, smp.duration)
		t.Description = smp.description
		t.Completed = smp.done
		if err := s.Tasks.Add(t); err != nil {
			return added, err
		}
		added = append(added, t)
	}
	s.Log.Info("seeded demo tasks", "day", day.String(), "count", len(added))
	return added, nil
}
