package move

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/interact"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func TestMoveAndResize(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	a, _ := svc.Add(ctx, "A", "", june1.At(9, 0), 30)
	b, _ := svc.Add(ctx, "B", "", june1.At(10, 0), 30)

	taken := june1.At(9, 0)
	if err := (&Move{App: svc, ID: b.ID, Start: &taken}).Do(ctx); !errors.Is(err, interact.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}

	free := june1.AddDays(1).At(11, 30)
	var out bytes.Buffer
	if err := (&Move{App: svc, ID: b.ID[:8], Start: &free, Delta: 60, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("move: %v", err)
	}
	got, _ := svc.Tasks.Get(b.ID)
	if !got.Start.Equal(free) || got.Duration != 90 {
		t.Fatalf("unexpected task %+v", got)
	}
	if !strings.Contains(out.String(), "11:30 AM - 1:00 PM") {
		t.Fatalf("expected span in output:\n%s", out.String())
	}

	if err := (&Move{App: svc, ID: a.ID}).Do(ctx); err == nil {
		t.Fatalf("expected error when nothing changes")
	}
}
