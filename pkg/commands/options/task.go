package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/snake"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// TaskOptions carries the scheduling flags shared by add and move.
type TaskOptions struct {
	Description string
	At          string
	Duration    string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description shown in the task detail panel.")
	AddAtArgs(cmd, o)
	cmd.Flags().StringVar(&o.Duration, "duration", timeutil.DefaultDuration,
		`How long the task runs, example: --duration=45m or --duration=1h30m.`)
}

func AddAtArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		Wrap80(`Start time, example: --at=9:30, --at=2pm or an RFC3339 timestamp. Defaults to the next half hour today or 9:00 on other days.`))
}

// Start combines --at with day. A full RFC3339 value ignores day.
func (o *TaskOptions) Start(day timeutil.Day, now time.Time) (time.Time, error) {
	at := strings.TrimSpace(o.At)
	if at == "" {
		if day == timeutil.DayOf(now) {
			return calendar.Anchor{Day: day, Slot: calendar.SlotIndex(now) + 1}.Time(), nil
		}
		return day.At(9, 0), nil
	}
	if t, err := task.ParseTime(at); err == nil {
		return t, nil
	}
	hour, minute, err := snake.ParseClock(at)
	if err != nil {
		return time.Time{}, err
	}
	return day.At(hour, minute), nil
}

// Minutes parses --duration.
func (o *TaskOptions) Minutes() (int, error) {
	m, err := snake.ParseDuration(o.Duration)
	if err != nil {
		return 0, fmt.Errorf("--duration: %w", err)
	}
	return m, nil
}
