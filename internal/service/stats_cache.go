package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"lifemap/internal/domain"
)

// StatsCache guarda la ultima foto de las estadisticas de administracion.
type StatsCache interface {
	Get(ctx context.Context) (domain.AdminStats, bool, error)
	Set(ctx context.Context, stats domain.AdminStats, ttl time.Duration) error
}

type memoryStatsCache struct {
	mu        sync.Mutex
	stats     domain.AdminStats
	expiresAt time.Time
	ok        bool
}

func NewMemoryStatsCache() StatsCache {
	return &memoryStatsCache{}
}

func (c *memoryStatsCache) Get(_ context.Context) (domain.AdminStats, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ok {
		return domain.AdminStats{}, false, nil
	}
	if time.Now().UTC().After(c.expiresAt) {
		c.ok = false
		return domain.AdminStats{}, false, nil
	}
	return c.stats, true, nil
}

func (c *memoryStatsCache) Set(_ context.Context, stats domain.AdminStats, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
	c.expiresAt = time.Now().UTC().Add(ttl)
	c.ok = true
	return nil
}

type redisKVClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisStatsCache struct {
	client redisKVClient
	key    string
}

func NewRedisStatsCache(client *redis.Client) StatsCache {
	if client == nil {
		return nil
	}
	return &redisStatsCache{
		client: client,
		key:    "lifemap:admin:stats",
	}
}

func (c *redisStatsCache) Get(ctx context.Context) (domain.AdminStats, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.AdminStats{}, false, nil
		}
		return domain.AdminStats{}, false, err
	}
	var stats domain.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.AdminStats{}, false, err
	}
	return stats, true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, stats domain.AdminStats, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Minute
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.key, payload, ttl).Err()
}
