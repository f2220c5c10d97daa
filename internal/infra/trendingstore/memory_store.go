package trendingstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/yanqian/solar-calculator/internal/domain/trending"
)

// MemoryStore keeps location counters in process memory for tests/dev.
type MemoryStore struct {
	mu     sync.RWMutex
	counts map[string]int64
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]int64)}
}

// Increment bumps the counter for a state and city pair.
func (s *MemoryStore) Increment(_ context.Context, state, city string) error {
	if strings.TrimSpace(state) == "" || strings.TrimSpace(city) == "" {
		return nil
	}
	key := trending.Key(state, city)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[key]++
	return nil
}

// Top returns the most requested locations, ties broken by key.
func (s *MemoryStore) Top(_ context.Context, limit int) ([]trending.LocationCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.counts)
	}
	keys := make([]string, 0, len(s.counts))
	for key := range s.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := s.counts[keys[i]], s.counts[keys[j]]
		if ci == cj {
			return keys[i] < keys[j]
		}
		return ci > cj
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	items := make([]trending.LocationCount, 0, len(keys))
	for _, key := range keys {
		state, city := trending.SplitKey(key)
		items = append(items, trending.LocationCount{State: state, City: city, Count: s.counts[key]})
	}
	return items, nil
}

var _ trending.Store = (*MemoryStore)(nil)
