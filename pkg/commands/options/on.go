package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/snake"
	"tableflip.dev/daygrid/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects a calendar day.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28", --on=tomorrow or --on=+2.`)
}

// GetDay resolves the flag relative to now. Empty means today.
func (o *OnOptions) GetDay(now time.Time) (timeutil.Day, error) {
	today := timeutil.DayOf(now)
	if d, err := snake.ParseDay(o.OnString, today); err == nil {
		return d, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return timeutil.Day{}, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// "1/3" typed on 12/5 means next January, not eleven months ago.
		if timeutil.DayOf(t).Before(today) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return timeutil.DayOf(t), nil
}
