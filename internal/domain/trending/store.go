package trending

import (
	"context"
	"strings"
)

// LocationCount reports how often a location was estimated.
type LocationCount struct {
	State string `json:"state"`
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// Store persists per-location estimate counters.
type Store interface {
	Increment(ctx context.Context, state, city string) error
	Top(ctx context.Context, limit int) ([]LocationCount, error)
}

const keySeparator = "|"

// Key joins state and city into the member name used by stores.
func Key(state, city string) string {
	return strings.TrimSpace(state) + keySeparator + strings.TrimSpace(city)
}

// SplitKey reverses Key. Keys without a separator are treated as a bare state.
func SplitKey(key string) (string, string) {
	state, city, _ := strings.Cut(key, keySeparator)
	return state, city
}
