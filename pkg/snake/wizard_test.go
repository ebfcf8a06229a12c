package snake

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func TestParseDay(t *testing.T) {
	cases := map[string]timeutil.Day{
		"":           june1,
		"Today":      june1,
		"tomorrow":   june1.AddDays(1),
		"yesterday":  june1.AddDays(-1),
		"+2":         june1.AddDays(2),
		"-3":         june1.AddDays(-3),
		"2024-12-25": {Year: 2024, Month: time.December, Day: 25},
	}
	for in, want := range cases {
		got, err := ParseDay(in, june1)
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDay(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseDay("someday", june1); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		in           string
		hour, minute int
	}{
		{"9:30", 9, 30},
		{"14:00", 14, 0},
		{"2pm", 14, 0},
		{"9AM", 9, 0},
		{"2:30 pm", 14, 30},
		{"7", 7, 0},
	}
	for _, c := range cases {
		h, m, err := ParseClock(c.in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", c.in, err)
		}
		if h != c.hour || m != c.minute {
			t.Fatalf("ParseClock(%q) = %d:%d, want %d:%d", c.in, h, m, c.hour, c.minute)
		}
	}
	for _, bad := range []string{"", "noon", "25:00"} {
		if _, _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseDurationAndTitle(t *testing.T) {
	if m, err := ParseDuration("1h30m"); err != nil || m != 90 {
		t.Fatalf("ParseDuration: %d %v", m, err)
	}
	if _, err := ParseDuration("0"); err == nil {
		t.Fatalf("expected zero duration to be rejected")
	}
	if err := ValidateTitle("   "); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle("Write report"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"y", "Yes", "true", "1"} {
		if v, err := ParseBool(in); err != nil || !v {
			t.Fatalf("ParseBool(%q) = %v %v", in, v, err)
		}
	}
	for _, in := range []string{"n", "No", "false", "0"} {
		if v, err := ParseBool(in); err != nil || v {
			t.Fatalf("ParseBool(%q) = %v %v", in, v, err)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestNopCloser(t *testing.T) {
	var buf bytes.Buffer
	w := NopCloser(&buf)
	if _, err := w.Write([]byte("hi")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hi" {
		t.Fatalf("unexpected %q", buf.String())
	}
}
