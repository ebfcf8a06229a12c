package tasks

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 1, hour, minute, 0, 0, time.Local)
}

func newTestTask(id, title string, start time.Time, duration int) task.Task {
	return task.Task{ID: id, Title: title, Start: task.At(start), Duration: duration}
}

func openMemory(t *testing.T) (*Store, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	s, err := Open(mem)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return s, mem
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s, _ := openMemory(t)
	if err := s.Add(newTestTask("t1", "a", at(9, 0), 30)); err != nil {
		t.Fatalf("add: %v", err)
	}
	err := s.Add(newTestTask("t1", "b", at(10, 0), 30))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if got := len(s.All()); got != 1 {
		t.Fatalf("expected 1 task, got %d", got)
	}
}

func TestUpdateIsIdempotent(t *testing.T) {
	s, _ := openMemory(t)
	orig := newTestTask("t1", "a", at(9, 0), 30)
	if err := s.Add(orig); err != nil {
		t.Fatalf("add: %v", err)
	}
	changed := orig
	changed.Title = "renamed"

	if err := s.Update(changed); err != nil {
		t.Fatalf("update: %v", err)
	}
	once := s.All()
	if err := s.Update(changed); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual(once, s.All()) {
		t.Fatalf("second update changed state")
	}
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	s, mem := openMemory(t)
	if err := s.Update(newTestTask("ghost", "x", at(9, 0), 30)); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(s.All()) != 0 {
		t.Fatalf("update must not insert")
	}
	if mem.Writes(store.KeyTasks) != 0 {
		t.Fatalf("no-op update should not write")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := openMemory(t)
	if err := s.Add(newTestTask("t1", "a", at(9, 0), 30)); err != nil {
		t.Fatalf("add: %v", err)
	}
	before := s.All()
	if err := s.Delete("missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !reflect.DeepEqual(before, s.All()) {
		t.Fatalf("deleting a missing id changed the store")
	}
	if err := s.Delete("t1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete("t1"); err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if len(s.All()) != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestEveryMutationWritesSnapshot(t *testing.T) {
	s, mem := openMemory(t)
	tk := newTestTask("t1", "a", at(9, 0), 30)
	_ = s.Add(tk)
	_ = s.Update(tk.Toggle())
	_ = s.Delete("t1")
	if got := mem.Writes(store.KeyTasks); got != 3 {
		t.Fatalf("expected 3 writes, got %d", got)
	}
}

func TestPersistReloadRoundTrip(t *testing.T) {
	s, mem := openMemory(t)
	a := newTestTask("a", "first", at(9, 0), 30)
	b := newTestTask("b", "second", at(8, 0), 60)
	b.Description = "details"
	b.Completed = true
	for _, tk := range []task.Task{a, b} {
		if err := s.Add(tk); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	reloaded, err := Open(mem)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := reloaded.All()
	want := s.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.ID != w.ID || g.Title != w.Title || g.Description != w.Description ||
			g.Duration != w.Duration || g.Completed != w.Completed || !g.Start.Equal(w.Start.Time) {
			t.Fatalf("task %d mismatch: got %+v want %+v", i, g, w)
		}
	}
}

func TestFailedWriteKeepsMemoryState(t *testing.T) {
	s, mem := openMemory(t)
	mem.FailWrites = true
	if err := s.Add(newTestTask("t1", "a", at(9, 0), 30)); err == nil {
		t.Fatalf("expected persist error")
	}
	if _, ok := s.Get("t1"); !ok {
		t.Fatalf("in-memory add should not be rolled back")
	}
}

func TestCurrent(t *testing.T) {
	s, _ := openMemory(t)
	_ = s.Add(newTestTask("t1", "a", at(9, 0), 30))
	if got, ok := s.Current(at(9, 15)); !ok || got.ID != "t1" {
		t.Fatalf("expected t1 current, got %+v %v", got, ok)
	}
	if _, ok := s.Current(at(11, 0)); ok {
		t.Fatalf("expected nothing current")
	}
}
