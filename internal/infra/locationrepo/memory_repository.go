package locationrepo

import (
	"context"
	"sort"

	"github.com/yanqian/solar-calculator/internal/domain/location"
)

// MemoryRepository serves the solar hours table from process memory.
// It is read-only after construction and safe for concurrent use.
type MemoryRepository struct {
	records []location.Record
	byKey   map[string][]int
	cities  map[string][]string
	states  []string
}

// NewMemoryRepository indexes records. Duplicate (state, city) rows are kept so lookups can report them.
func NewMemoryRepository(records []location.Record) *MemoryRepository {
	r := &MemoryRepository{
		records: append([]location.Record(nil), records...),
		byKey:   make(map[string][]int),
		cities:  make(map[string][]string),
	}
	seenCity := make(map[string]struct{})
	for i, rec := range r.records {
		key := recordKey(rec.State, rec.City)
		r.byKey[key] = append(r.byKey[key], i)
		if _, ok := seenCity[key]; ok {
			continue
		}
		seenCity[key] = struct{}{}
		if _, ok := r.cities[rec.State]; !ok {
			r.states = append(r.states, rec.State)
		}
		r.cities[rec.State] = append(r.cities[rec.State], rec.City)
	}
	sort.Strings(r.states)
	return r
}

// Find implements location.Repository.
func (r *MemoryRepository) Find(_ context.Context, state, city string) ([]location.Record, error) {
	idx := r.byKey[recordKey(state, city)]
	if len(idx) == 0 {
		return nil, nil
	}
	out := make([]location.Record, 0, len(idx))
	for _, i := range idx {
		out = append(out, r.records[i])
	}
	return out, nil
}

// States implements location.Repository.
func (r *MemoryRepository) States(_ context.Context) ([]string, error) {
	return append([]string(nil), r.states...), nil
}

// Cities implements location.Repository.
func (r *MemoryRepository) Cities(_ context.Context, state string) ([]string, error) {
	return append([]string(nil), r.cities[state]...), nil
}

// Len reports the number of rows loaded.
func (r *MemoryRepository) Len() int {
	return len(r.records)
}

func recordKey(state, city string) string {
	return state + "\x00" + city
}

var _ location.Repository = (*MemoryRepository)(nil)
