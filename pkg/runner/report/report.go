// Package report provides the runner that lists recently completed tasks.
package report

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
)

// Report prints completed tasks for the Days calendar days ending at Now.
type Report struct {
	App  *app.Service
	Days int
	Now  time.Time
	JSON bool
	Out  io.Writer
}

// Do builds and prints the report.
func (n *Report) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not report, no persistence")
	}
	if n.Days < 1 {
		return errors.New("--days must be at least 1")
	}
	until := n.Now
	if until.IsZero() {
		until = time.Now()
	}
	since := until.AddDate(0, 0, -(n.Days - 1))

	result, err := n.App.Report(ctx, since, until)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if n.JSON {
		return pp.JSON(result)
	}
	pp.Report(result)
	return nil
}
