package note

import (
	"encoding/json"
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/timeutil"
)

func TestEntryJSONLayout(t *testing.T) {
	e := Entry{ID: "n1", Date: timeutil.Day{Year: 2024, Month: time.June, Day: 1}, Content: "hello"}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got := string(b); got != `{"id":"n1","date":"2024-06-01","content":"hello"}` {
		t.Fatalf("unexpected layout: %s", got)
	}
	var back Entry
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != e {
		t.Fatalf("round trip mismatch: %+v", back)
	}
}

func TestNewStartsEmpty(t *testing.T) {
	d := timeutil.Day{Year: 2024, Month: time.June, Day: 1}
	a, b := New(d), New(d)
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
	if a.Content != "" || a.Date != d {
		t.Fatalf("unexpected entry %+v", a)
	}
}
