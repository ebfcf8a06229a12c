package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDayOfDropsClock(t *testing.T) {
	a := DayOf(time.Date(2024, time.June, 1, 0, 1, 0, 0, time.Local))
	b := DayOf(time.Date(2024, time.June, 1, 23, 59, 0, 0, time.Local))
	if a != b {
		t.Fatalf("expected same day, got %v and %v", a, b)
	}
	if !a.Before(Day{Year: 2024, Month: time.June, Day: 2}) {
		t.Fatalf("expected ordering by date")
	}
}

func TestAddDaysCrossesMonth(t *testing.T) {
	d := Day{Year: 2024, Month: time.June, Day: 30}.AddDays(1)
	if d != (Day{Year: 2024, Month: time.July, Day: 1}) {
		t.Fatalf("unexpected day %v", d)
	}
}

func TestDayJSON(t *testing.T) {
	b, err := json.Marshal(Day{Year: 2024, Month: time.June, Day: 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-06-01"` {
		t.Fatalf("unexpected layout %s", b)
	}
	var d Day
	if err := json.Unmarshal([]byte(`"June 1"`), &d); err == nil {
		t.Fatalf("expected parse error")
	}
}
