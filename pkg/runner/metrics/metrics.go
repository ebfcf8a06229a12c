// Package metrics provides the runner that prints the completion and
// planning figures of a range of days.
package metrics

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/daygrid/pkg/app"
	daymetrics "tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Metrics prints Days consecutive days starting at From.
type Metrics struct {
	App  *app.Service
	From timeutil.Day
	Days int
	JSON bool
	Out  io.Writer
}

// Do computes and prints the metrics.
func (n *Metrics) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not measure, no persistence")
	}
	days := n.Days
	if days < 1 {
		days = 1
	}

	all := make([]daymetrics.Day, 0, days)
	for i := 0; i < days; i++ {
		all = append(all, n.App.Metrics(ctx, n.From.AddDays(i)))
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		if days == 1 {
			return pp.JSON(all[0])
		}
		return pp.JSON(all)
	}
	for _, m := range all {
		pp.Title(m.Date.Time().Format("Monday, Jan 2"))
		pp.Metrics(m)
	}
	return nil
}
