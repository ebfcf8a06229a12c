package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/calendar"
	"tableflip.dev/daygrid/pkg/interact"
	"tableflip.dev/daygrid/pkg/logging"
	"tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/note"
	"tableflip.dev/daygrid/pkg/notes"
	"tableflip.dev/daygrid/pkg/sound"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/tasks"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Service provides high-level operations over tasks and notes.
// It wraps the stores so the terminal UI, CLI and MCP server share logic.
type Service struct {
	Persistence store.Persistence
	Tasks       *tasks.Store
	Notes       *notes.Store
	Sound       *sound.Manager
	Log         *slog.Logger
}

var (
	ErrTaskNotFound = errors.New("app: task not found")
	ErrAmbiguousID  = errors.New("app: id prefix matches more than one task")
)

// Open loads both collections from p.
func Open(p store.Persistence, player sound.Player, log *slog.Logger) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	log = logging.OrDiscard(log)
	ts, err := tasks.Open(p, tasks.WithLogger(log))
	if err != nil {
		return nil, err
	}
	ns, err := notes.Open(p, log)
	if err != nil {
		return nil, err
	}
	return &Service{
		Persistence: p,
		Tasks:       ts,
		Notes:       ns,
		Sound:       sound.NewManager(player, log),
		Log:         log,
	}, nil
}

// Controller builds an interaction controller over the task store.
func (s *Service) Controller(opts ...interact.Option) *interact.Controller {
	base := []interact.Option{interact.WithPlayer(s.Sound), interact.WithLogger(s.Log)}
	return interact.New(s.Tasks, append(base, opts...)...)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	return s.Persistence.Watch(ctx)
}

// Reload refreshes the collection stored under key.
func (s *Service) Reload(key string) error {
	switch key {
	case store.KeyTasks:
		return s.Tasks.Reload()
	case store.KeyNotes:
		return s.Notes.Reload()
	default:
		if err := s.Tasks.Reload(); err != nil {
			return err
		}
		return s.Notes.Reload()
	}
}

// Resolve finds a task by full id or unique id prefix.
func (s *Service) Resolve(id string) (task.Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return task.Task{}, ErrTaskNotFound
	}
	if t, ok := s.Tasks.Get(id); ok {
		return t, nil
	}
	var found []task.Task
	for _, t := range s.Tasks.All() {
		if strings.HasPrefix(t.ID, id) {
			found = append(found, t)
		}
	}
	switch len(found) {
	case 0:
		return task.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	case 1:
		return found[0], nil
	default:
		return task.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// Add validates and stores a free-form task.
func (s *Service) Add(ctx context.Context, title, description string, start time.Time, duration int) (task.Task, error) {
	t := task.New(title, start, duration)
	t.Description = strings.TrimSpace(description)
	if err := t.Validate(); err != nil {
		return task.Task{}, err
	}
	if err := s.Tasks.Add(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Toggle flips completion for the task id resolves to.
func (s *Service) Toggle(ctx context.Context, id string) (task.Task, error) {
	t, err := s.Resolve(id)
	if err != nil {
		return task.Task{}, err
	}
	t = t.Toggle()
	if err := s.Tasks.Update(t); err != nil {
		return task.Task{}, err
	}
	if t.Completed {
		_ = s.Sound.Play(sound.Complete)
	} else {
		_ = s.Sound.Play(sound.Incomplete)
	}
	return t, nil
}

// Delete removes the task id resolves to.
func (s *Service) Delete(ctx context.Context, id string) (task.Task, error) {
	t, err := s.Resolve(id)
	if err != nil {
		return task.Task{}, err
	}
	if err := s.Tasks.Delete(t.ID); err != nil {
		return task.Task{}, err
	}
	_ = s.Sound.Play(sound.Delete)
	return t, nil
}

// Move reschedules a task to start. It refuses a start another task already
// begins at, the exact-start rule drag and drop follows.
func (s *Service) Move(ctx context.Context, id string, start time.Time) (task.Task, error) {
	t, err := s.Resolve(id)
	if err != nil {
		return task.Task{}, err
	}
	if occupant, ok := calendar.OccupantAt(s.Tasks.All(), start, t.ID); ok {
		return task.Task{}, fmt.Errorf("%w: %s held by %s", interact.ErrSlotOccupied, start.Local().Format("2006-01-02 15:04"), occupant.Title)
	}
	t = t.MoveTo(start)
	if err := s.Tasks.Update(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Resize adjusts a task's duration by delta minutes.
func (s *Service) Resize(ctx context.Context, id string, delta int) (task.Task, error) {
	t, err := s.Resolve(id)
	if err != nil {
		return task.Task{}, err
	}
	t = t.Resize(delta)
	if err := s.Tasks.Update(t); err != nil {
		return task.Task{}, err
	}
	return t, nil
}

// Agenda lists the tasks starting on day ordered by start time.
func (s *Service) Agenda(ctx context.Context, day timeutil.Day) []task.Task {
	var out []task.Task
	for _, t := range s.Tasks.All() {
		if timeutil.DayOf(t.Start.Time) == day {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start.Time)
	})
	return out
}

// Metrics computes the day metrics using the seasonal daylight window.
func (s *Service) Metrics(ctx context.Context, day timeutil.Day) metrics.Day {
	sunrise, sunset := calendar.Daylight(day.Month)
	return metrics.ForDay(s.Tasks.All(), day, sunrise, sunset)
}

// Current returns the task running at now.
func (s *Service) Current(ctx context.Context, now time.Time) (task.Task, bool) {
	return s.Tasks.Current(now)
}

// Note returns the journal entry for day, creating it when missing.
func (s *Service) Note(ctx context.Context, day timeutil.Day) (note.Entry, error) {
	return s.Notes.GetOrCreateForDate(day)
}

// WriteNote replaces the content of day's journal entry.
func (s *Service) WriteNote(ctx context.Context, day timeutil.Day, content string) (note.Entry, error) {
	e, err := s.Notes.GetOrCreateForDate(day)
	if err != nil {
		return note.Entry{}, err
	}
	if err := s.Notes.Update(e.ID, content); err != nil {
		return note.Entry{}, err
	}
	e.Content = content
	return e, nil
}

// PeekNote returns day's journal entry without creating it.
func (s *Service) PeekNote(day timeutil.Day) (note.Entry, bool) {
	return s.Notes.ForDate(day)
}
