// Package mcp provides the Model Context Protocol server integration for daygrid.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/metrics"
	"tableflip.dev/daygrid/pkg/note"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Service adapts the application service to transport-friendly projections.
type Service struct {
	App *app.Service
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a Service backed by svc.
func NewService(svc *app.Service) *Service {
	return &Service{App: svc, Now: time.Now}
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Start       string `json:"startTime"`
	End         string `json:"endTime"`
	Span        string `json:"span"`
	Duration    int    `json:"duration"`
	Completed   bool   `json:"completed"`
	Status      string `json:"status"`
}

// NoteDTO is a transport-friendly projection of a day note.
type NoteDTO struct {
	ID      string `json:"id,omitempty"`
	Date    string `json:"date"`
	Content string `json:"content"`
	Exists  bool   `json:"exists"`
}

// DayDTO bundles everything known about one date.
type DayDTO struct {
	Date    string      `json:"date"`
	Tasks   []TaskDTO   `json:"tasks"`
	Metrics metrics.Day `json:"metrics"`
	Summary string      `json:"summary"`
	Note    NoteDTO     `json:"note"`
}

// AddTaskOptions captures the parameters used to create a new task.
type AddTaskOptions struct {
	Title       string
	Description string
	Start       string
	Duration    string
}

// ParseDate reads a YYYY-MM-DD date, or one of today/yesterday/tomorrow.
// An empty string is today.
func (s *Service) ParseDate(input string) (timeutil.Day, error) {
	today := timeutil.DayOf(s.now())
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	case "tomorrow":
		return today.AddDays(1), nil
	}
	return timeutil.ParseDay(strings.TrimSpace(input))
}

// ListTasks returns the tasks starting on day in start order.
func (s *Service) ListTasks(ctx context.Context, day timeutil.Day) []TaskDTO {
	return toTaskDTOs(s.App.Agenda(ctx, day))
}

// AllTasks returns every stored task.
func (s *Service) AllTasks(ctx context.Context) []TaskDTO {
	return toTaskDTOs(s.App.Tasks.All())
}

// TaskByID resolves a full id or unique prefix.
func (s *Service) TaskByID(ctx context.Context, id string) (TaskDTO, error) {
	t, err := s.App.Resolve(id)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// AddTask validates opts and stores a new task.
func (s *Service) AddTask(ctx context.Context, opts AddTaskOptions) (TaskDTO, error) {
	start, err := task.ParseTime(strings.TrimSpace(opts.Start))
	if err != nil {
		return TaskDTO{}, fmt.Errorf("invalid startTime %q: expected RFC3339", opts.Start)
	}
	minutes, err := timeutil.ParseMinutes(opts.Duration)
	if err != nil {
		return TaskDTO{}, err
	}
	t, err := s.App.Add(ctx, opts.Title, opts.Description, start, minutes)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// ToggleTask flips completion.
func (s *Service) ToggleTask(ctx context.Context, id string) (TaskDTO, error) {
	t, err := s.App.Toggle(ctx, id)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// DeleteTask removes a task and returns what was removed.
func (s *Service) DeleteTask(ctx context.Context, id string) (TaskDTO, error) {
	t, err := s.App.Delete(ctx, id)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// MoveTask reschedules a task to an RFC3339 start time.
func (s *Service) MoveTask(ctx context.Context, id, start string) (TaskDTO, error) {
	at, err := task.ParseTime(strings.TrimSpace(start))
	if err != nil {
		return TaskDTO{}, fmt.Errorf("invalid startTime %q: expected RFC3339", start)
	}
	t, err := s.App.Move(ctx, id, at)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// ResizeTask changes a duration by delta minutes.
func (s *Service) ResizeTask(ctx context.Context, id string, delta int) (TaskDTO, error) {
	if delta == 0 {
		return TaskDTO{}, errors.New("delta must be non-zero")
	}
	t, err := s.App.Resize(ctx, id, delta)
	if err != nil {
		return TaskDTO{}, err
	}
	return toTaskDTO(t), nil
}

// CurrentTask returns the task covering the present moment, if any.
func (s *Service) CurrentTask(ctx context.Context) (TaskDTO, bool) {
	t, ok := s.App.Current(ctx, s.now())
	if !ok {
		return TaskDTO{}, false
	}
	return toTaskDTO(t), true
}

// Day returns tasks, metrics and the note for day without creating a note.
func (s *Service) Day(ctx context.Context, day timeutil.Day) DayDTO {
	m := s.App.Metrics(ctx, day)
	n, ok := s.App.PeekNote(day)
	return DayDTO{
		Date:    day.String(),
		Tasks:   s.ListTasks(ctx, day),
		Metrics: m,
		Summary: m.Summary(),
		Note:    toNoteDTO(day, n, ok),
	}
}

// ReadNote returns the note for day, or an empty projection.
func (s *Service) ReadNote(ctx context.Context, day timeutil.Day) NoteDTO {
	n, ok := s.App.PeekNote(day)
	return toNoteDTO(day, n, ok)
}

// WriteNote replaces the note content for day.
func (s *Service) WriteNote(ctx context.Context, day timeutil.Day, content string) (NoteDTO, error) {
	n, err := s.App.WriteNote(ctx, day, content)
	if err != nil {
		return NoteDTO{}, err
	}
	return toNoteDTO(day, n, true), nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func toTaskDTOs(list []task.Task) []TaskDTO {
	out := make([]TaskDTO, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskDTO(t))
	}
	return out
}

func toTaskDTO(t task.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Start:       task.FormatTime(t.Start.Time),
		End:         task.FormatTime(t.End()),
		Span:        t.Span(),
		Duration:    t.Duration,
		Completed:   t.Completed,
		Status:      t.Status(),
	}
}

func toNoteDTO(day timeutil.Day, n note.Entry, ok bool) NoteDTO {
	if !ok {
		return NoteDTO{Date: day.String()}
	}
	return NoteDTO{ID: n.ID, Date: day.String(), Content: n.Content, Exists: true}
}
