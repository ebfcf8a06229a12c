// Package task defines the scheduled task record shared by the stores, view
// models and user interfaces.
package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// SlotMinutes is the grid granularity that durations snap to on resize.
	SlotMinutes = 30
	// DefaultDuration is used for quick-added tasks.
	DefaultDuration = SlotMinutes
)

var (
	ErrEmptyTitle  = errors.New("task: title required")
	ErrNoStart     = errors.New("task: start time required")
	ErrBadDuration = errors.New("task: duration must be positive")
)

// Task is a single scheduled block of work.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       Timestamp `json:"startTime"`
	Duration    int       `json:"duration"`
	Completed   bool      `json:"completed"`
}

// NewID returns a fresh opaque task identifier.
func NewID() string {
	return uuid.NewString()
}

// New builds an incomplete task with a generated id.
func New(title string, start time.Time, duration int) Task {
	return Task{
		ID:       NewID(),
		Title:    title,
		Start:    At(start),
		Duration: duration,
	}
}

// Validate enforces the input boundary rules before a task reaches a store.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if t.Start.IsZero() {
		return ErrNoStart
	}
	if t.Duration <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadDuration, t.Duration)
	}
	return nil
}

// End is the instant the task finishes.
func (t Task) End() time.Time {
	return t.Start.Add(time.Duration(t.Duration) * time.Minute)
}

// Covers reports whether now falls within the task, inclusive of both ends.
func (t Task) Covers(now time.Time) bool {
	return !now.Before(t.Start.Time) && !now.After(t.End())
}

// Resize adjusts the duration by delta minutes and snaps the result onto the
// slot grid: up when growing, down when shrinking. It never drops below one
// slot.
func (t Task) Resize(delta int) Task {
	d := t.Duration + delta
	if r := d % SlotMinutes; d > 0 && r != 0 {
		switch {
		case delta > 0:
			d += SlotMinutes - r
		case delta < 0:
			d -= r
		}
	}
	t.Duration = max(d, SlotMinutes)
	return t
}

// MoveTo rewrites the start time and keeps every other field.
func (t Task) MoveTo(start time.Time) Task {
	t.Start = At(start)
	return t
}

// Toggle flips completion and nothing else.
func (t Task) Toggle() Task {
	t.Completed = !t.Completed
	return t
}

// Status is the label shown for a running task.
func (t Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "In Progress"
}
