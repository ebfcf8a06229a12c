package note

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func TestReadDoesNotCreate(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	n := Note{App: svc, Day: june1, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "no note") {
		t.Fatalf("expected placeholder:\n%s", out.String())
	}
	if len(svc.Notes.All()) != 0 {
		t.Fatalf("reading must not create a note")
	}
}

func TestWriteThenAppend(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	first := "shipped the report"
	if err := (&Note{App: svc, Day: june1, Content: &first, Out: &bytes.Buffer{}}).Do(ctx); err != nil {
		t.Fatalf("write: %v", err)
	}
	second := "quiet afternoon"
	var out bytes.Buffer
	if err := (&Note{App: svc, Day: june1, Content: &second, Append: true, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, ok := svc.PeekNote(june1)
	if !ok || got.Content != "shipped the report\nquiet afternoon" {
		t.Fatalf("unexpected note %+v", got)
	}
	if len(svc.Notes.All()) != 1 {
		t.Fatalf("expected a single note for the day, got %d", len(svc.Notes.All()))
	}
	if !strings.Contains(out.String(), "Saturday, Jun 1") {
		t.Fatalf("expected day title:\n%s", out.String())
	}
}
