// Package cache is a small read cache for GET responses. A version counter
// per collection makes invalidation a single INCR on any write; keys from
// older versions simply expire. Redis being unreachable disables caching
// without affecting the API.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/tallermotors/autoservice-api/internal/config"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis using the configured address. On ping failure the
// returned cache is disabled, not nil.
func New(cfg *config.Config) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return &Cache{}
	}

	return &Cache{
		rdb: rdb,
		ttl: time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Key builds a versioned cache key for a collection and a request-specific
// suffix (path + query, hashed to keep keys short).
func (c *Cache) Key(ctx context.Context, collection, suffix string) string {
	var ver int64
	if c.Enabled() {
		ver, _ = c.rdb.Get(ctx, "ver:"+collection).Int64()
	}
	sum := sha1.Sum([]byte(suffix))
	return fmt.Sprintf("cache:%s:v%d:%s", collection, ver, hex.EncodeToString(sum[:]))
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *Cache) Set(ctx context.Context, key string, val []byte) {
	if !c.Enabled() {
		return
	}
	c.rdb.Set(ctx, key, val, c.ttl)
}

// Bump invalidates every cached response for a collection.
func (c *Cache) Bump(ctx context.Context, collection string) {
	if !c.Enabled() {
		return
	}
	c.rdb.Incr(ctx, "ver:"+collection)
}
