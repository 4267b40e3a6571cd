// Package cache keeps computed leaderboards in Redis for a short time.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/limbo/frisfocus/pkg/cleanup"
	"github.com/limbo/frisfocus/pkg/entity"
)

const (
	keyPrefix  = "leaderboard:"
	versionKey = keyPrefix + "version"
)

type RedisCfg struct {
	Address  string
	Password string
	DB       int
}

// LeaderboardCache stores boards under a generation number. Invalidate bumps
// the generation so every stored board becomes unreachable at once and
// expires on its own TTL.
type LeaderboardCache struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewRedisClient(ctx context.Context, cfg RedisCfg) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, errors.New("pinging redis error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing redis client",
		F:    rdb.Close,
	})
	return rdb, nil
}

func NewLeaderboardCache(rdb redis.UniversalClient, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// Key resolves key against the current generation. A board computed after
// Key returned must be stored under the same resolved key, so an Invalidate
// that happens meanwhile leaves it unreachable.
func (c *LeaderboardCache) Key(ctx context.Context, key string) (string, error) {
	version, err := c.rdb.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", errors.New("reading leaderboard cache version error: " + err.Error())
	}
	return keyPrefix + "v" + strconv.FormatInt(version, 10) + ":" + key, nil
}

// Get expects a key resolved by Key.
func (c *LeaderboardCache) Get(ctx context.Context, fullKey string) ([]entity.LeaderboardEntry, bool, error) {
	data, err := c.rdb.Get(ctx, fullKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errors.New("reading leaderboard cache error: " + err.Error())
	}
	var entries []entity.LeaderboardEntry
	if err = sonic.Unmarshal(data, &entries); err != nil {
		return nil, false, errors.New("decoding cached leaderboard error: " + err.Error())
	}
	return entries, true, nil
}

// Set expects a key resolved by Key.
func (c *LeaderboardCache) Set(ctx context.Context, fullKey string, entries []entity.LeaderboardEntry) error {
	data, err := sonic.Marshal(entries)
	if err != nil {
		return errors.New("encoding leaderboard error: " + err.Error())
	}
	if err = c.rdb.Set(ctx, fullKey, data, c.ttl).Err(); err != nil {
		return errors.New("writing leaderboard cache error: " + err.Error())
	}
	return nil
}

func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, versionKey).Err(); err != nil {
		return errors.New("invalidating leaderboard cache error: " + err.Error())
	}
	return nil
}
