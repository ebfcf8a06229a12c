package agenda

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func seeded(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if _, err := svc.Add(ctx, "Review", "", june1.At(14, 0), 60); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Add(ctx, "Write report", "", june1.At(9, 0), 90); err != nil {
		t.Fatal(err)
	}
	return svc
}

func TestAgendaText(t *testing.T) {
	svc := seeded(t)
	var out bytes.Buffer
	a := Agenda{App: svc, Day: june1, Now: june1.At(8, 0), Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Today · Saturday, Jun 1 - 2 tasks") {
		t.Fatalf("unexpected title:\n%s", got)
	}
	if strings.Index(got, "Write report") > strings.Index(got, "Review") {
		t.Fatalf("expected start order:\n%s", got)
	}
	if !strings.Contains(got, "0/2") || !strings.Contains(got, "2.5h of 14h daylight") {
		t.Fatalf("expected metrics:\n%s", got)
	}
	if len(svc.Notes.All()) != 0 {
		t.Fatalf("printing an agenda must not create a note")
	}
}

func TestAgendaJSON(t *testing.T) {
	svc := seeded(t)
	var out bytes.Buffer
	a := Agenda{App: svc, Day: june1.AddDays(1), Now: june1.At(8, 0), JSON: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got["date"] != "2024-06-02" {
		t.Fatalf("unexpected date %v", got["date"])
	}
	if tasks, ok := got["tasks"].([]any); !ok || len(tasks) != 0 {
		t.Fatalf("expected empty task list, got %v", got["tasks"])
	}
}

func TestAgendaWindow(t *testing.T) {
	svc := seeded(t)
	var out bytes.Buffer
	a := Agenda{App: svc, Day: june1, Now: june1.At(8, 0), Window: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	for _, want := range []string{"Today Jun 1", "Tomorrow Jun 2", "● Write report"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}
