package report

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

func TestReportWindow(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for i, title := range []string{"old", "recent", "open"} {
		tk, err := svc.Add(ctx, title, "", june1.AddDays(-2+i).At(9, 0), 30)
		if err != nil {
			t.Fatal(err)
		}
		if title != "open" {
			if _, err := svc.Toggle(ctx, tk.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	var out bytes.Buffer
	r := Report{App: svc, Days: 2, Now: june1.At(18, 0), Out: &out}
	if err := r.Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "recent") || strings.Contains(got, "old") || strings.Contains(got, "open") {
		t.Fatalf("unexpected report:\n%s", got)
	}

	if err := (&Report{App: svc, Days: 0}).Do(ctx); err == nil {
		t.Fatalf("expected error for zero days")
	}
}
