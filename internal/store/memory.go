// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Used by tests and as a fallback when durability is not required.
//
// Characteristics:
//   - Results kept in insertion order, returned newest first.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process exits.

package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memory is an in-memory Store implementation.
type memory struct {
	mu       sync.RWMutex // guards everything below
	progress Progress
	results  []Result
	nextID   int64
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{nextID: 1}
}

func (m *memory) LoadProgress(ctx context.Context) (Progress, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.progress, nil
}

func (m *memory) SaveProgress(ctx context.Context, p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = p
	return nil
}

func (m *memory) RecordResult(ctx context.Context, r *Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextID
	m.nextID++
	if r.PlayedAt.IsZero() {
		r.PlayedAt = time.Now().UTC()
	}
	m.results = append(m.results, *r)
	return nil
}

func (m *memory) Results(ctx context.Context, limit int) ([]Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PlayedAt.Equal(out[j].PlayedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].PlayedAt.After(out[j].PlayedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memory) Result(ctx context.Context, id int64) (Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.results {
		if r.ID == id {
			return r, nil
		}
	}
	return Result{}, ErrNotFound
}

func (m *memory) PlayedDaily(ctx context.Context, date string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.results {
		if r.Daily && r.Date == date {
			return true, nil
		}
	}
	return false, nil
}

func (m *memory) Close() error { return nil }
