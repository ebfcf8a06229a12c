package app

import (
	"context"
	"time"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// CarryoverResult lists what a carryover moved and what it left behind.
type CarryoverResult struct {
	Moved   []task.Task `json:"moved"`
	Skipped []task.Task `json:"skipped"`
}

// Carryover reschedules the incomplete tasks of from onto the same clock time
// on to. A task whose target anchor is already taken stays where it is.
func (s *Service) Carryover(ctx context.Context, from, to timeutil.Day) (CarryoverResult, error) {
	var res CarryoverResult
	if from == to {
		return res, nil
	}
	for _, t := range s.Agenda(ctx, from) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if t.Completed {
			continue
		}
		start := t.Start.Local()
		target := to.At(start.Hour(), start.Minute())
		if _, taken := calendar.OccupantAt(s.Tasks.All(), target, t.ID); taken {
			res.Skipped = append(res.Skipped, t)
			continue
		}
		moved := t.MoveTo(target)
		if err := s.Tasks.Update(moved); err != nil {
			return res, err
		}
		res.Moved = append(res.Moved, moved)
	}
	s.Log.Info("carryover", "from", from.String(), "to", to.String(), "moved", len(res.Moved), "skipped", len(res.Skipped))
	return res, nil
}

// Yesterday is the day before now.
func Yesterday(now time.Time) timeutil.Day {
	return timeutil.DayOf(now).AddDays(-1)
}
