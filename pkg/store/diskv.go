// Package store keeps whole-collection snapshots under fixed keys in a flat
// key-value store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

const (
	// KeyTasks holds the ordered task collection.
	KeyTasks = "tasks"
	// KeyNotes holds the ordered note collection.
	KeyNotes = "notes"
)

// ErrNotFound is returned by Get for a key that was never written.
var ErrNotFound = errors.New("store: key not found")

// Persistence is a synchronous key-value snapshot store.
type Persistence interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, error) {
	if !p.d.Has(key) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	val, err := p.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (p *persistence) Put(key string, data []byte) error {
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// LoadJSON decodes the snapshot under key into v. A missing key leaves v
// untouched.
func LoadJSON(p Persistence, key string, v any) error {
	data, err := p.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

// SaveJSON serializes v and overwrites the snapshot under key.
func SaveJSON(p Persistence, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.Put(key, data)
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
