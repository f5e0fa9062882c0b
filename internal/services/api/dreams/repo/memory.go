package repo

import (
	"context"
	"slices"
	"sync"

	"dreammap/internal/core/dream"
	perr "dreammap/internal/platform/errors"
)

// Memory is the local fallback store used when postgres is disabled
type Memory struct {
	mu   sync.RWMutex
	recs []dream.Record
	ids  map[string]struct{}
}

// NewMemory builds a store holding seed
func NewMemory(seed ...dream.Record) *Memory {
	m := &Memory{ids: map[string]struct{}{}}
	for _, r := range seed {
		_ = m.Insert(context.Background(), r)
	}
	return m
}

// Insert stores rec; a repeated id is a duplicate key error
func (m *Memory) Insert(_ context.Context, rec dream.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.ids[rec.ID]; ok {
		return perr.Newf(perr.ErrorCodeDuplicateKey, "dream %s already exists", rec.ID)
	}
	m.ids[rec.ID] = struct{}{}
	m.recs = append(m.recs, rec)
	return nil
}

// List returns copies ordered like the postgres query
func (m *Memory) List(_ context.Context, f Filter) ([]dream.Record, error) {
	m.mu.RLock()
	out := make([]dream.Record, 0, len(m.recs))
	for _, r := range m.recs {
		if f.Category == "" || r.Category == f.Category {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b dream.Record) int {
		if a.Timestamp != b.Timestamp {
			if a.Timestamp > b.Timestamp {
				return -1
			}
			return 1
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

// Len reports the number of stored dreams
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.recs)
}
