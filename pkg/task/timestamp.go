package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// ParseTime reads an RFC3339 timestamp and returns it in local time.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

// FormatTime renders v the way it is persisted.
func FormatTime(v time.Time) string {
	return v.Format(time.RFC3339)
}

// Timestamp is a minute precision wall-clock instant.
type Timestamp struct {
	time.Time
}

// At truncates t to the minute.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Minute)}
}

// SameDay reports whether t falls on the calendar day of then, in local time.
func (t Timestamp) SameDay(then time.Time) bool {
	a, b := t.Local(), then.Local()
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return FormatTime(t.Time)
}
