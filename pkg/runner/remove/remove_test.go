package remove

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

func TestRemove(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	day := timeutil.Day{Year: 2024, Month: time.June, Day: 1}
	a, _ := svc.Add(ctx, "gone", "", day.At(9, 0), 30)
	if _, err := svc.Add(ctx, "kept", "", day.At(10, 0), 30); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := (&Remove{App: svc, ID: a.ID, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	if _, ok := svc.Tasks.Get(a.ID); ok {
		t.Fatalf("task still present")
	}
	if got := out.String(); !strings.Contains(got, "kept") || strings.Contains(got, "gone") {
		t.Fatalf("unexpected output:\n%s", got)
	}
	if err := (&Remove{App: svc, ID: a.ID}).Do(ctx); err == nil {
		t.Fatalf("expected unknown id error")
	}
}
