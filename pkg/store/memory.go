package store

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process Persistence. It backs tests and --ephemeral runs.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	writes map[string]int
	subs   []chan Event

	// FailWrites makes every Put return an error.
	FailWrites bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte), writes: make(map[string]int)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Put(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("store: write %s: memory store refusing writes", key)
	}
	m.data[key] = append([]byte(nil), data...)
	m.writes[key]++
	for _, ch := range m.subs {
		select {
		case ch <- Event{Key: key}:
		default:
		}
	}
	return nil
}

// Writes reports how many times key has been written.
func (m *Memory) Writes(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[key]
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 64)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
