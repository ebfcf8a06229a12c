package timeutil

import (
	"encoding/json"
	"fmt"
	"time"
)

// DayLayout is the persisted form of a Day.
const DayLayout = "2006-01-02"

// Day is a calendar date with no time component.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf returns the local calendar day of t.
func DayOf(t time.Time) Day {
	t = t.Local()
	return Day{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDay reads a "YYYY-MM-DD" key.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return Day{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return DayOf(t), nil
}

// Time is midnight of the day in local time.
func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// At is the wall-clock instant hour:minute on d.
func (d Day) At(hour, minute int) time.Time {
	return time.Date(d.Year, d.Month, d.Day, hour, minute, 0, 0, time.Local)
}

// AddDays shifts d by n calendar days.
func (d Day) AddDays(n int) Day {
	return DayOf(d.Time().AddDate(0, 0, n))
}

// Before orders days chronologically.
func (d Day) Before(o Day) bool {
	return d.String() < o.String()
}

func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
