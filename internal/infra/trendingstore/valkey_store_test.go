package trendingstore

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/solar-calculator/internal/domain/trending"
)

func newMiniValkey(t *testing.T) (*miniredis.Miniredis, valkey.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{server.Addr()},
		DisableCache: true,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return server, client
}

func TestValkeyStoreIncrementAndTop(t *testing.T) {
	server, client := newMiniValkey(t)
	store := NewValkeyStore(client, "test")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Increment(ctx, "TX", "Austin"))
	}
	require.NoError(t, store.Increment(ctx, "AZ", "Phoenix"))
	require.NoError(t, store.Increment(ctx, "", "Nowhere"))

	score, err := server.ZScore("test:locations", "TX|Austin")
	require.NoError(t, err)
	require.Equal(t, 3.0, score)

	top, err := store.Top(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, []trending.LocationCount{
		{State: "TX", City: "Austin", Count: 3},
		{State: "AZ", City: "Phoenix", Count: 1},
	}, top)
}

func TestValkeyStoreTopEmpty(t *testing.T) {
	_, client := newMiniValkey(t)

	top, err := NewValkeyStore(client, "").Top(context.Background(), 3)
	require.NoError(t, err)
	require.Empty(t, top)
}

func TestValkeyStoreLocationsKey(t *testing.T) {
	require.Equal(t, "solar:locations", NewValkeyStore(nil, "").locationsKey())
	require.Equal(t, "dev:locations", NewValkeyStore(nil, "dev").locationsKey())
}
