// Package month provides the runner that prints month grids with busy days
// highlighted.
package month

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/printers"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Month prints Count months starting with the month of From.
type Month struct {
	App   *app.Service
	From  timeutil.Day
	Count int
	Out   io.Writer
}

// Do prints the months.
func (n *Month) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get, no persistence")
	}
	count := n.Count
	if count < 1 {
		count = 1
	}

	pp := printers.PrettyPrint{Out: n.Out}
	all := n.App.Tasks.All()
	then := time.Date(n.From.Year, n.From.Month, 1, 1, 0, 0, 0, time.Local)
	for i := 0; i < count; i++ {
		pp.Month(then, all...)
		then = printers.NextMonth(then)
	}
	return nil
}
