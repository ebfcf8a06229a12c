package interact

import (
	"sync"
	"time"
)

// manualScheduler holds timers until Advance is called.
type manualScheduler struct {
	mu      sync.Mutex
	elapsed time.Duration
	timers  []*manualTimer
}

type manualTimer struct {
	s       *manualScheduler
	due     time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, due: s.elapsed + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d and runs every timer that came due.
func (s *manualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.elapsed += d
	var due []*manualTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.due <= s.elapsed {
			t.fired = true
			due = append(due, t)
		}
	}
	s.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

// Pending counts armed timers that have neither fired nor been stopped.
func (s *manualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
