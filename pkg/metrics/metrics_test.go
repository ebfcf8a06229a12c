package metrics

import (
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func scheduled(hour, duration int, done bool) task.Task {
	start := time.Date(2024, time.June, 1, hour, 0, 0, 0, time.Local)
	t := task.New("t", start, duration)
	t.Completed = done
	return t
}

func TestForDayNoTasks(t *testing.T) {
	d := ForDay(nil, june1, 6, 20)
	if d.Total != 0 || d.Completion != 0 || d.Planning != 0 {
		t.Fatalf("expected zero metrics, got %+v", d)
	}
	if got := d.Summary(); got != "0h of 14h daylight" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestForDayCounts(t *testing.T) {
	other := task.New("elsewhere", time.Date(2024, time.June, 2, 9, 0, 0, 0, time.Local), 600)
	tasks := []task.Task{
		scheduled(9, 60, true),
		scheduled(10, 30, false),
		scheduled(11, 30, false),
		scheduled(12, 60, true),
		other,
	}
	d := ForDay(tasks, june1, 6, 20)
	if d.Total != 4 || d.Completed != 2 || d.Remaining != 2 {
		t.Fatalf("unexpected counts %+v", d)
	}
	if d.Completion != 50 {
		t.Fatalf("expected 50%% completion, got %v", d.Completion)
	}
	if d.ScheduledHours != 3 {
		t.Fatalf("expected 3 scheduled hours, got %v", d.ScheduledHours)
	}
	if got := d.Summary(); got != "3h of 14h daylight" {
		t.Fatalf("unexpected summary %q", got)
	}
	if got := d.Progress(); got != "2/4" {
		t.Fatalf("unexpected progress %q", got)
	}
}

func TestPlanningClampsForDisplayOnly(t *testing.T) {
	d := ForDay([]task.Task{scheduled(6, 720, false)}, june1, 7, 17)
	if d.Planning != 120 {
		t.Fatalf("expected unclamped 120, got %v", d.Planning)
	}
	if d.PlanningBar() != 100 {
		t.Fatalf("expected bar clamped to 100, got %v", d.PlanningBar())
	}
	if got := d.Summary(); got != "12h of 10h daylight" {
		t.Fatalf("unexpected summary %q", got)
	}
}

func TestSummaryFractionalHours(t *testing.T) {
	d := ForDay([]task.Task{scheduled(9, 90, false)}, june1, 6, 20)
	if got := d.Summary(); got != "1.5h of 14h daylight" {
		t.Fatalf("unexpected summary %q", got)
	}
}
