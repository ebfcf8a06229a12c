// Package sound plays short audio cues for task events. Playback is best
// effort: failures are logged and never reach the caller.
package sound

import (
	"log/slog"
	"sync"

	"tableflip.dev/daygrid/pkg/logging"
)

// Kind identifies a cue.
type Kind int

const (
	Complete Kind = iota
	Incomplete
	Delete
	Drag
)

func (k Kind) String() string {
	switch k {
	case Complete:
		return "TASK_COMPLETE"
	case Incomplete:
		return "TASK_INCOMPLETE"
	case Delete:
		return "TASK_DELETE"
	case Drag:
		return "TASK_DRAG"
	}
	return "UNKNOWN"
}

// Player renders a cue.
type Player interface {
	Play(kind Kind) error
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Kind) error { return nil }

// Manager gates a backend Player behind a global enable flag and volume.
type Manager struct {
	mu      sync.Mutex
	backend Player
	log     *slog.Logger
	enabled bool
	volume  float64
}

// NewManager wraps backend. A nil backend plays nothing.
func NewManager(backend Player, log *slog.Logger) *Manager {
	if backend == nil {
		backend = Nop{}
	}
	return &Manager{
		backend: backend,
		log:     logging.OrDiscard(log),
		enabled: true,
		volume:  1,
	}
}

// SetEnabled toggles playback globally.
func (m *Manager) SetEnabled(enabled bool) {
	m.mu.Lock()
	m.enabled = enabled
	m.mu.Unlock()
}

// Enabled reports the global flag.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

// SetVolume stores v clamped to [0,1].
func (m *Manager) SetVolume(v float64) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	m.mu.Lock()
	m.volume = v
	m.mu.Unlock()
}

// Volume returns the current level.
func (m *Manager) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// Play forwards kind to the backend when enabled and audible. It always
// returns nil.
func (m *Manager) Play(kind Kind) error {
	m.mu.Lock()
	audible := m.enabled && m.volume > 0
	m.mu.Unlock()
	if !audible {
		return nil
	}
	if err := m.backend.Play(kind); err != nil {
		m.log.Warn("sound playback failed", "kind", kind.String(), "error", err)
	}
	return nil
}
