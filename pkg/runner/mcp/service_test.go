package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/app"
	"tableflip.dev/daygrid/pkg/interact"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
	"tableflip.dev/daygrid/pkg/timeutil"
)

var june1 = timeutil.Day{Year: 2024, Month: time.June, Day: 1}

func newTestService(t *testing.T) *Service {
	t.Helper()
	a, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	svc := NewService(a)
	svc.Now = func() time.Time { return june1.At(9, 10) }
	return svc
}

func rfc(t time.Time) string {
	return task.FormatTime(t)
}

func TestParseDate(t *testing.T) {
	svc := newTestService(t)
	cases := map[string]timeutil.Day{
		"":           june1,
		"today":      june1,
		"Yesterday":  june1.AddDays(-1),
		"tomorrow":   june1.AddDays(1),
		"2024-07-04": {Year: 2024, Month: time.July, Day: 4},
	}
	for in, want := range cases {
		got, err := svc.ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDate(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := svc.ParseDate("next week"); err == nil {
		t.Fatalf("expected error for unparseable date")
	}
}

func TestAddListAndCurrent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	late, err := svc.AddTask(ctx, AddTaskOptions{Title: "Review", Start: rfc(june1.At(14, 0)), Duration: "1h"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	early, err := svc.AddTask(ctx, AddTaskOptions{Title: "Write report", Description: "Q2", Start: rfc(june1.At(9, 0))})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if early.Duration != 30 {
		t.Fatalf("expected default duration 30, got %d", early.Duration)
	}
	if late.Duration != 60 {
		t.Fatalf("expected 60 minutes, got %d", late.Duration)
	}

	list := svc.ListTasks(ctx, june1)
	if len(list) != 2 || list[0].ID != early.ID || list[1].ID != late.ID {
		t.Fatalf("expected tasks in start order, got %+v", list)
	}
	if list[0].Span != "9:00 AM - 9:30 AM" {
		t.Fatalf("unexpected span %q", list[0].Span)
	}

	cur, ok := svc.CurrentTask(ctx)
	if !ok || cur.ID != early.ID {
		t.Fatalf("expected current task %s, got %+v %v", early.ID, cur, ok)
	}
	if cur.Status != "In Progress" {
		t.Fatalf("unexpected status %q", cur.Status)
	}
}

func TestAddTaskRejectsBadInput(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "x", Start: "9am"}); err == nil || !strings.Contains(err.Error(), "RFC3339") {
		t.Fatalf("expected RFC3339 error, got %v", err)
	}
	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "  ", Start: rfc(june1.At(9, 0))}); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if _, err := svc.AddTask(ctx, AddTaskOptions{Title: "x", Start: rfc(june1.At(9, 0)), Duration: "soon"}); err == nil {
		t.Fatalf("expected duration error")
	}
	if got := len(svc.AllTasks(ctx)); got != 0 {
		t.Fatalf("expected no tasks stored, got %d", got)
	}
}

func TestToggleMoveResizeDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.AddTask(ctx, AddTaskOptions{Title: "A", Start: rfc(june1.At(9, 0))})
	b, _ := svc.AddTask(ctx, AddTaskOptions{Title: "B", Start: rfc(june1.At(10, 0))})

	got, err := svc.ToggleTask(ctx, a.ID[:8])
	if err != nil || !got.Completed || got.Status != "Completed" {
		t.Fatalf("toggle by prefix: %v %+v", err, got)
	}

	if _, err := svc.MoveTask(ctx, b.ID, rfc(june1.At(9, 0))); !errors.Is(err, interact.ErrSlotOccupied) {
		t.Fatalf("expected ErrSlotOccupied, got %v", err)
	}
	moved, err := svc.MoveTask(ctx, b.ID, rfc(june1.At(11, 30)))
	if err != nil || moved.Start != rfc(june1.At(11, 30)) {
		t.Fatalf("move: %v %+v", err, moved)
	}

	if _, err := svc.ResizeTask(ctx, b.ID, 0); err == nil {
		t.Fatalf("expected error for zero delta")
	}
	resized, err := svc.ResizeTask(ctx, b.ID, 30)
	if err != nil || resized.Duration != 60 {
		t.Fatalf("resize: %v %+v", err, resized)
	}

	deleted, err := svc.DeleteTask(ctx, a.ID)
	if err != nil || deleted.ID != a.ID {
		t.Fatalf("delete: %v %+v", err, deleted)
	}
	if _, err := svc.TaskByID(ctx, a.ID); !errors.Is(err, app.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDayAndNotes(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, _ := svc.AddTask(ctx, AddTaskOptions{Title: "A", Start: rfc(june1.At(9, 0)), Duration: "90m"})
	if _, err := svc.ToggleTask(ctx, a.ID); err != nil {
		t.Fatal(err)
	}

	day := svc.Day(ctx, june1)
	if day.Note.Exists {
		t.Fatalf("reading a day must not create its note")
	}
	if len(svc.App.Notes.All()) != 0 {
		t.Fatalf("expected no notes stored")
	}
	if day.Metrics.Total != 1 || day.Metrics.Completed != 1 {
		t.Fatalf("unexpected metrics %+v", day.Metrics)
	}
	if !strings.HasPrefix(day.Summary, "1.5h of ") {
		t.Fatalf("unexpected summary %q", day.Summary)
	}

	n, err := svc.WriteNote(ctx, june1, "**shipped** the report")
	if err != nil {
		t.Fatalf("write note: %v", err)
	}
	if !n.Exists || n.Date != "2024-06-01" {
		t.Fatalf("unexpected note %+v", n)
	}
	if got := svc.ReadNote(ctx, june1); got.Content != "**shipped** the report" {
		t.Fatalf("unexpected note content %q", got.Content)
	}
}

func TestServerRequiresApp(t *testing.T) {
	if _, err := (Runner{}).Server(); err == nil {
		t.Fatalf("expected error without application service")
	}
	a, err := app.Open(store.NewMemory(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	srv, err := Runner{App: a}.Server()
	if err != nil || srv == nil {
		t.Fatalf("server: %v", err)
	}
	if err := (Runner{App: a, Transport: "carrier-pigeon"}).Do(context.Background()); err == nil {
		t.Fatalf("expected unknown transport error")
	}
}
