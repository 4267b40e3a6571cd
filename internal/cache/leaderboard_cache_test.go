package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/frisfocus/internal/cache"
	"github.com/limbo/frisfocus/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) string {
	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatal("error running redis container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	return endpoint
}

func TestLeaderboardCacheIntegrational(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	rdb, err := cache.NewRedisClient(ctx, cache.RedisCfg{Address: setupRedis(t)})
	require.NoError(t, err)
	defer rdb.Close()
	c := cache.NewLeaderboardCache(rdb, time.Minute)

	entries := []entity.LeaderboardEntry{
		{Rank: 1, UserID: uuid.New(), DisplayName: "Ann", FpTotal: 120},
		{Rank: 2, UserID: uuid.New(), DisplayName: "Bob", FpTotal: 40},
	}

	key, err := c.Key(ctx, "all:allTime:10")
	require.NoError(t, err)
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, entries))
	cached, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entries, cached)

	require.NoError(t, c.Invalidate(ctx))
	key, err = c.Key(ctx, "all:allTime:10")
	require.NoError(t, err)
	_, ok, err = c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	t.Run("board written after invalidation stays unreachable", func(t *testing.T) {
		resolved, err := c.Key(ctx, "all:weekly:10")
		require.NoError(t, err)
		require.NoError(t, c.Invalidate(ctx))
		require.NoError(t, c.Set(ctx, resolved, entries))

		current, err := c.Key(ctx, "all:weekly:10")
		require.NoError(t, err)
		assert.NotEqual(t, resolved, current)
		_, ok, err := c.Get(ctx, current)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
