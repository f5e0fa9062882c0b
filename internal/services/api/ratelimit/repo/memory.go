package repo

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process history for single-node and test deployments
type Memory struct {
	mu     sync.Mutex
	window time.Duration
	byID   map[string][]time.Time
}

// NewMemory builds an empty memory history
func NewMemory(window time.Duration) *Memory {
	return &Memory{window: window, byID: map[string][]time.Time{}}
}

// Timestamps returns a copy of the entries after since
func (m *Memory) Timestamps(_ context.Context, identity string, since time.Time) ([]time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, 0, len(m.byID[identity]))
	for _, t := range m.byID[identity] {
		if t.After(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

// Record appends at and drops entries that fell out of the window
func (m *Memory) Record(_ context.Context, identity string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := at.Add(-m.window)
	kept := m.byID[identity][:0]
	for _, t := range m.byID[identity] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	m.byID[identity] = append(kept, at)
	return nil
}

// Len reports how many identities are tracked
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.byID)
}
