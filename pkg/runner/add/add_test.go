package add

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func newApp(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return svc
}

func TestAddPrintsDay(t *testing.T) {
	svc := newApp(t)
	var out bytes.Buffer
	a := Add{App: svc, Title: "Write report", Start: june1.At(9, 0), Duration: 60, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := svc.Agenda(context.Background(), june1); len(got) != 1 {
		t.Fatalf("expected one stored task, got %d", len(got))
	}
	for _, want := range []string{"2024-06-01 - 1 task", "9:00 AM", "1h", "Write report"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected %q in:\n%s", want, out.String())
		}
	}
}

func TestAddJSON(t *testing.T) {
	svc := newApp(t)
	var out bytes.Buffer
	a := Add{App: svc, Title: "Standup", Start: june1.At(10, 0), Duration: 30, JSON: true, Out: &out}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got task.Task
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if got.Title != "Standup" || got.ID == "" {
		t.Fatalf("unexpected task %+v", got)
	}
}

func TestAddValidates(t *testing.T) {
	svc := newApp(t)
	a := Add{App: svc, Title: " ", Start: june1.At(9, 0), Duration: 30, Out: &bytes.Buffer{}}
	if err := a.Do(context.Background()); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := (&Add{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without app")
	}
}
