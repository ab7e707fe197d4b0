package storage

import (
	"context"
	"sync"
)

// MemoryAdapter is an in-memory Adapter for tests and ephemeral runs.
// FailGet/FailSet map keys to errors returned instead of performing the
// operation, so soft-fail paths in the stores can be exercised.
type MemoryAdapter struct {
	mu      sync.RWMutex
	data    map[string][]byte
	FailGet map[string]error
	FailSet map[string]error
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{data: make(map[string][]byte)}
}

func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if err, ok := a.FailGet[key]; ok {
		return nil, err
	}
	v, ok := a.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err, ok := a.FailSet[key]; ok {
		return err
	}
	v := make([]byte, len(value))
	copy(v, value)
	a.data[key] = v
	return nil
}

func (a *MemoryAdapter) Remove(_ context.Context, key string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.data, key)
	return nil
}

// Seed stores raw bytes under key, bypassing failure injection.
func (a *MemoryAdapter) Seed(key string, value []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data[key] = value
}
