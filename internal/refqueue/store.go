// Package refqueue persists the ordered log of rendered captions and serves
// header requests that drain it page by page.
package refqueue

import (
	"context"
	"slices"
	"sync"
)

// Store defines the persistence of the reference queue.
type Store interface {
	// ReadAll returns every entry in insertion order. A store that was never
	// written reads as empty.
	ReadAll(ctx context.Context) ([]string, error)

	// ReplaceAll overwrites the queue with entries.
	ReplaceAll(ctx context.Context, entries []string) error

	// Append adds one entry at the end of the queue.
	Append(ctx context.Context, entry string) error

	// Close releases resources held by the store.
	Close() error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []string
}

// NewMemoryStore creates a memory store seeded with entries.
func NewMemoryStore(entries ...string) *MemoryStore {
	return &MemoryStore{entries: slices.Clone(entries)}
}

func (m *MemoryStore) ReadAll(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.entries), nil
}

func (m *MemoryStore) ReplaceAll(_ context.Context, entries []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = slices.Clone(entries)
	return nil
}

func (m *MemoryStore) Append(_ context.Context, entry string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryStore) Close() error { return nil }
