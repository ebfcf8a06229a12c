package app

import (
	"context"
	"time"

	"tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// ReportSection groups the completed tasks of one day.
type ReportSection struct {
	Day       timeutil.Day `json:"day"`
	Completed []task.Task  `json:"completed"`
	Metrics   metrics.Day  `json:"metrics"`
}

// ReportResult is a completed-tasks report for a window of days.
type ReportResult struct {
	Since    timeutil.Day    `json:"since"`
	Until    timeutil.Day    `json:"until"`
	Sections []ReportSection `json:"sections"`
	Total    int             `json:"total"`
}

// Report returns completed tasks grouped by day between the provided bounds,
// most recent day first. Days without completions are skipped.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}
	first, last := timeutil.DayOf(since), timeutil.DayOf(until)
	res := ReportResult{Since: first, Until: last}
	for day := last; !day.Before(first); day = day.AddDays(-1) {
		var done []task.Task
		for _, t := range s.Agenda(ctx, day) {
			if t.Completed {
				done = append(done, t)
			}
		}
		if len(done) == 0 {
			continue
		}
		res.Sections = append(res.Sections, ReportSection{
			Day:       day,
			Completed: done,
			Metrics:   s.Metrics(ctx, day),
		})
		res.Total += len(done)
	}
	return res, nil
}
