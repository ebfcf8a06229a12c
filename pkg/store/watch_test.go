package store

import (
	"context"
	"testing"
	"time"
)

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := SaveJSON(p, KeyTasks, []string{"x"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Key == "" || evt.Key == KeyTasks {
				return
			}
			t.Fatalf("unexpected key %q", evt.Key)
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}

func TestMemoryWatchClosesOnCancel(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := m.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := m.Put(KeyNotes, []byte("[]")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if evt := <-ch; evt.Key != KeyNotes {
		t.Fatalf("expected notes event, got %+v", evt)
	}
	cancel()
	for range ch {
	}
}
