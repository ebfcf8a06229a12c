package task

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	cases := []struct {
		name string
		task Task
		want error
	}{
		{name: "ok", task: New("Write report", start, 30)},
		{name: "blank title", task: New("   ", start, 30), want: ErrEmptyTitle},
		{name: "no start", task: Task{ID: "a", Title: "x", Duration: 30}, want: ErrNoStart},
		{name: "zero duration", task: New("x", start, 0), want: ErrBadDuration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.task.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestResizeFloorsAtOneSlot(t *testing.T) {
	cases := []struct {
		duration, delta, want int
	}{
		{30, -30, 30},
		{30, 30, 60},
		{20, 30, 60},
		{45, -30, 30},
		{10, -30, 30},
		{45, 30, 90},
		{100, -30, 60},
		{45, 0, 45},
	}
	for _, c := range cases {
		tk := New("x", time.Now(), c.duration)
		got := tk.Resize(c.delta).Duration
		if got != c.want {
			t.Fatalf("Resize(%d) on %dm = %d, want %d", c.delta, c.duration, got, c.want)
		}
		if c.delta != 0 && got%SlotMinutes != 0 {
			t.Fatalf("Resize(%d) on %dm left %d off the slot grid", c.delta, c.duration, got)
		}
	}
}

func TestToggleOnlyFlipsCompletion(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	tk := New("x", start, 45)
	got := tk.Toggle()
	if !got.Completed {
		t.Fatalf("expected completed")
	}
	if !got.Start.Equal(tk.Start.Time) || got.Duration != tk.Duration || got.ID != tk.ID {
		t.Fatalf("toggle changed scheduling fields: %+v", got)
	}
}

func TestCovers(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	tk := New("x", start, 30)
	if !tk.Covers(start.Add(30 * time.Minute)) {
		t.Fatalf("end instant should be covered")
	}
	if tk.Covers(start.Add(31 * time.Minute)) {
		t.Fatalf("after end should not be covered")
	}
}

func TestJSONLayout(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 42, 0, time.Local)
	tk := New("Write report", start, 30)
	b, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"id"`, `"title"`, `"startTime"`, `"duration":30`, `"completed":false`} {
		if !strings.Contains(s, key) {
			t.Fatalf("expected %s in %s", key, s)
		}
	}
	if strings.Contains(s, `"description"`) {
		t.Fatalf("empty description should be omitted: %s", s)
	}

	var back Task
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Start.Equal(start.Truncate(time.Minute)) {
		t.Fatalf("start did not survive: %v", back.Start)
	}
}

func TestRowAndSpan(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)
	tk := New("Write report\nsecond line", start, 90)
	mark, at, dur, title := tk.Row()
	if mark != unchecked || at != "9:00 AM" || dur != "1h30m" || title != "Write report" {
		t.Fatalf("unexpected row: %q %q %q %q", mark, at, dur, title)
	}
	if got := tk.Span(); got != "9:00 AM - 10:30 AM" {
		t.Fatalf("unexpected span %q", got)
	}
}
