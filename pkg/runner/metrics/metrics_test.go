package metrics

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

func TestMetricsRange(t *testing.T) {
	color.NoColor = true
	svc, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	a, _ := svc.Add(ctx, "A", "", june1.At(9, 0), 60)
	if _, err := svc.Add(ctx, "B", "", june1.At(11, 0), 60); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Toggle(ctx, a.ID); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := (&Metrics{App: svc, From: june1, Days: 2, JSON: true, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got []struct {
		Date       string  `json:"date"`
		Total      int     `json:"totalTasks"`
		Completion float64 `json:"completionPercentage"`
	}
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if len(got) != 2 || got[0].Total != 2 || got[0].Completion != 50 || got[1].Total != 0 {
		t.Fatalf("unexpected metrics %+v", got)
	}

	out.Reset()
	if err := (&Metrics{App: svc, From: june1, Out: &out}).Do(ctx); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(out.String(), "Saturday, Jun 1") || !strings.Contains(out.String(), "Completed") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
