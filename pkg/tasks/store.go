// Package tasks is the single source of truth for scheduled tasks. Every
// mutation rewrites the whole collection to persistence.
package tasks

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tableflip.dev/daygrid/pkg/logging"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/task"
)

// ErrDuplicateID is returned by Add when the id is already in the store.
var ErrDuplicateID = errors.New("tasks: duplicate id")

// Store is an ordered in-memory task collection backed by a snapshot key.
type Store struct {
	mu    sync.RWMutex
	p     store.Persistence
	log   *slog.Logger
	items []task.Task
}

// Option customises a Store.
type Option func(*Store)

// WithLogger routes store diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Open rehydrates the collection from p. A missing key yields an empty store.
func Open(p store.Persistence, opts ...Option) (*Store, error) {
	if p == nil {
		return nil, errors.New("tasks: no persistence configured")
	}
	s := &Store{p: p}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.OrDiscard(s.log)
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory collection with the persisted snapshot.
func (s *Store) Reload() error {
	var items []task.Task
	if err := store.LoadJSON(s.p, store.KeyTasks, &items); err != nil {
		return fmt.Errorf("tasks: load: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Debug("tasks loaded", "count", len(items))
	return nil
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]task.Task(nil), s.items...)
}

// Get looks a task up by id.
func (s *Store) Get(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	return task.Task{}, false
}

// Current returns the first task whose span covers now.
func (s *Store) Current(now time.Time) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.items {
		if t.Covers(now) {
			return t, true
		}
	}
	return task.Task{}, false
}

// Add appends t. The id must not already exist.
func (s *Store) Add(t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	s.items = append(s.items, t)
	s.log.Info("task added", "id", t.ID, "start", t.Start.String(), "duration", t.Duration)
	return s.persistLocked()
}

// Update replaces the record with the same id. Unknown ids are ignored.
func (s *Store) Update(t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(t.ID)
	if i < 0 {
		s.log.Debug("task update ignored", "id", t.ID)
		return nil
	}
	s.items[i] = t
	return s.persistLocked()
}

// Delete removes the record with id if present.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.log.Info("task deleted", "id", id)
	return s.persistLocked()
}

func (s *Store) indexLocked(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked writes the full snapshot. The in-memory state is kept even
// when the write fails.
func (s *Store) persistLocked() error {
	items := s.items
	if items == nil {
		items = []task.Task{}
	}
	if err := store.SaveJSON(s.p, store.KeyTasks, items); err != nil {
		s.log.Error("tasks persist failed", "error", err)
		return fmt.Errorf("tasks: persist: %w", err)
	}
	return nil
}
