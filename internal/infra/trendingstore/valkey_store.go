package trendingstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/solar-calculator/internal/domain/trending"
)

// ValkeyStore keeps location counters in a Valkey sorted set.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "solar"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) Increment(ctx context.Context, state, city string) error {
	if strings.TrimSpace(state) == "" || strings.TrimSpace(city) == "" {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.locationsKey()).Increment(1).Member(trending.Key(state, city)).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) Top(ctx context.Context, limit int) ([]trending.LocationCount, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.locationsKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeScores(arr)
}

func decodeScores(arr []valkey.ValkeyMessage) ([]trending.LocationCount, error) {
	out := make([]trending.LocationCount, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
			err    error
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			// RESP3 returns [member, score] per element
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].AsFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				return nil, err
			}
			if score, err = arr[i+1].AsFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		state, city := trending.SplitKey(member)
		out = append(out, trending.LocationCount{State: state, City: city, Count: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) locationsKey() string {
	return fmt.Sprintf("%s:locations", s.prefix)
}

var _ trending.Store = (*ValkeyStore)(nil)
