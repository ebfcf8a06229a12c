package task

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/timeutil"
)

const (
	clockLayout = "3:04 PM"
	checked     = "✔"
	unchecked   = "●"
)

// Span renders the start and end clock times, e.g. "9:00 AM - 9:30 AM".
func (t Task) Span() string {
	return fmt.Sprintf("%s - %s", t.Start.Format(clockLayout), t.End().Format(clockLayout))
}

// Row returns the columns used by the tabular printers.
func (t Task) Row() (string, string, string, string) {
	mark := unchecked
	if t.Completed {
		mark = checked
	}
	return mark, t.Start.Format(clockLayout), timeutil.FormatWindow(time.Duration(t.Duration) * time.Minute), t.Headline()
}

// Headline is the first line of the title.
func (t Task) Headline() string {
	head, _, _ := strings.Cut(t.Title, "\n")
	return head
}

func (t Task) String() string {
	mark, at, dur, title := t.Row()
	return fmt.Sprintf("%s %s (%s) %s", mark, at, dur, title)
}
