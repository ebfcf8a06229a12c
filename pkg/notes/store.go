// Package notes keeps the per-day journal entries.
package notes

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"tableflip.dev/daygrid/pkg/logging"
	"tableflip.dev/daygrid/pkg/note"
	"tableflip.dev/daygrid/pkg/store"
	"tableflip.dev/daygrid/pkg/timeutil"
)

// Store is the ordered note collection. Newest-authored entries come first.
type Store struct {
	mu    sync.RWMutex
	p     store.Persistence
	log   *slog.Logger
	items []note.Entry
}

// Group is every entry written for one date.
type Group struct {
	Date    timeutil.Day
	Entries []note.Entry
}

// Open rehydrates the note collection from p.
func Open(p store.Persistence, log *slog.Logger) (*Store, error) {
	if p == nil {
		return nil, errors.New("notes: no persistence configured")
	}
	s := &Store{p: p, log: logging.OrDiscard(log)}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the in-memory collection with the persisted snapshot.
func (s *Store) Reload() error {
	var items []note.Entry
	if err := store.LoadJSON(s.p, store.KeyNotes, &items); err != nil {
		return fmt.Errorf("notes: load: %w", err)
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// All returns a copy of the collection in stored order.
func (s *Store) All() []note.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]note.Entry(nil), s.items...)
}

// ForDate returns the entry for day without creating one.
func (s *Store) ForDate(day timeutil.Day) (note.Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.items {
		if e.Date == day {
			return e, true
		}
	}
	return note.Entry{}, false
}

// GetOrCreateForDate returns the entry for day, creating and persisting an
// empty one on first access.
func (s *Store) GetOrCreateForDate(day timeutil.Day) (note.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.items {
		if e.Date == day {
			return e, nil
		}
	}
	e := note.New(day)
	s.items = append([]note.Entry{e}, s.items...)
	s.log.Info("note created", "id", e.ID, "date", day.String())
	return e, s.persistLocked()
}

// Update replaces the content of entry id. Unknown ids are ignored.
func (s *Store) Update(id, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Content = content
			return s.persistLocked()
		}
	}
	return nil
}

// Grouped buckets entries by date, most recent date first. Entries within a
// date keep their stored order.
func (s *Store) Grouped() []Group {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index := make(map[timeutil.Day]int)
	var groups []Group
	for _, e := range s.items {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, Group{Date: e.Date})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[j].Date.Before(groups[i].Date)
	})
	return groups
}

func (s *Store) persistLocked() error {
	items := s.items
	if items == nil {
		items = []note.Entry{}
	}
	if err := store.SaveJSON(s.p, store.KeyNotes, items); err != nil {
		s.log.Error("notes persist failed", "error", err)
		return fmt.Errorf("notes: persist: %w", err)
	}
	return nil
}
