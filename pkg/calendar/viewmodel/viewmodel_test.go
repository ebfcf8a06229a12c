package viewmodel

import (
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, time.Local)
}

func newTestTask(id string, start time.Time, duration int) task.Task {
	return task.Task{ID: id, Title: id, Start: task.At(start), Duration: duration}
}

func TestBuildWindowColumns(t *testing.T) {
	now := at(1, 14, 40)
	w := Build(nil, 0, now)
	if len(w.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(w.Columns))
	}
	labels := []string{w.Columns[0].Label, w.Columns[1].Label, w.Columns[2].Label}
	if labels[0] != "Today" || labels[1] != "Tomorrow" || labels[2] != "Monday" {
		t.Fatalf("unexpected labels %v", labels)
	}
	if w.Columns[0].DateLabel != "Jun 1" {
		t.Fatalf("unexpected date label %q", w.Columns[0].DateLabel)
	}
	if w.Sunrise != 6 || w.Sunset != 20 {
		t.Fatalf("june should use long daylight, got %d-%d", w.Sunrise, w.Sunset)
	}
	for _, col := range w.Columns {
		if len(col.Slots) != 48 {
			t.Fatalf("expected 48 slots, got %d", len(col.Slots))
		}
	}
}

func TestBuildWithOffsetShiftsWindow(t *testing.T) {
	now := at(10, 8, 0)
	w := Build(nil, -2, now)
	want := []timeutil.Day{
		{Year: 2024, Month: time.June, Day: 8},
		{Year: 2024, Month: time.June, Day: 9},
		{Year: 2024, Month: time.June, Day: 10},
	}
	for i, col := range w.Columns {
		if col.Day != want[i] {
			t.Fatalf("column %d: got %v want %v", i, col.Day, want[i])
		}
	}
	if w.Columns[1].Label != "Yesterday" {
		t.Fatalf("expected Yesterday label, got %q", w.Columns[1].Label)
	}
	if w.Columns[0].Marker != nil || w.Columns[2].Marker == nil || !w.Columns[2].IsToday {
		t.Fatalf("marker must sit on the real today column")
	}
}

func TestPositionScenario(t *testing.T) {
	tk := newTestTask("report", at(1, 9, 0), 30)
	b := Position(tk)
	if b.Slot != 18 || b.Slots != 1 || b.Top != 720 || b.Height != 40 {
		t.Fatalf("unexpected block %+v", b)
	}
	tk = tk.Resize(30)
	if b := Position(tk); b.Slots != 2 || b.Height != 80 {
		t.Fatalf("resized block should span 2 slots, got %+v", b)
	}
	tk = tk.MoveTo(at(1, 9, 30))
	if b := Position(tk); b.Slot != 19 || b.Slots != 2 {
		t.Fatalf("moved block unexpected %+v", b)
	}
}

func TestPositionRoundsMinutesDownWithoutMutating(t *testing.T) {
	tk := newTestTask("odd", at(1, 9, 50), 20)
	b := Position(tk)
	if b.Slot != 19 || b.Slots != 1 {
		t.Fatalf("unexpected block %+v", b)
	}
	if b.Task.Start.Minute() != 50 {
		t.Fatalf("rendering must not change the stored start")
	}
}

func TestBuildMarksOccupancyAndBlocks(t *testing.T) {
	tasks := []task.Task{
		newTestTask("late", at(1, 15, 0), 30),
		newTestTask("early", at(1, 9, 0), 60),
		newTestTask("tomorrow", at(2, 9, 0), 30),
	}
	w := Build(tasks, 0, at(1, 7, 0))
	today := w.Columns[0]
	if len(today.Blocks) != 2 || today.Blocks[0].Task.ID != "early" || today.Blocks[1].Task.ID != "late" {
		t.Fatalf("blocks should be ordered by slot: %+v", today.Blocks)
	}
	if !today.Slots[18].Occupied || today.Slots[19].Occupied || !today.Slots[30].Occupied {
		t.Fatalf("unexpected occupancy")
	}
	if len(w.Columns[1].Blocks) != 1 {
		t.Fatalf("expected tomorrow's task in column 1")
	}
	if today.Slots[10].Daytime || !today.Slots[18].Daytime {
		t.Fatalf("unexpected day/night banding")
	}
}

func TestMarkerAt(t *testing.T) {
	m := MarkerAt(at(1, 9, 45))
	if m.Slot != 19 || m.Top != 19*40+20 {
		t.Fatalf("unexpected marker %+v", m)
	}
}

func TestWithOptions(t *testing.T) {
	w := Build(nil, 0, at(1, 9, 0), WithDays(5), WithDaylight(8, 18))
	if len(w.Columns) != 5 || w.Sunrise != 8 || w.Sunset != 18 {
		t.Fatalf("options not applied: %d columns %d-%d", len(w.Columns), w.Sunrise, w.Sunset)
	}
}
