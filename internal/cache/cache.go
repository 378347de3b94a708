// Package cache stores rendered view responses keyed by dataset version and
// request path. Entries never need invalidation: a new dataset gets a new
// version and therefore new keys.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	redis "github.com/redis/go-redis/v9"
)

// Cache is a byte cache shared across requests.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte) error
	Name() string
}

// Key builds the cache key for a view response.
func Key(version, path string) string { return "fieldroutes:view:" + version + ":" + path }

// New selects a backend by mode: "off" returns nil, "memory" or "redis".
func New(mode, redisURL string, ttl time.Duration) (Cache, error) {
	switch mode {
	case "", "off":
		return nil, nil
	case "memory":
		return NewMemory(maxMemoryEntries, ttl), nil
	case "redis":
		r, err := NewRedis(redisURL, ttl)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown cache mode %q", mode)
}

// Views are few; the bound only matters for drill-down paths.
const maxMemoryEntries = 4096

// Memory is an in-process LRU with per-entry expiry.
type Memory struct {
	lru *expirable.LRU[string, []byte]
}

func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[string, []byte](size, nil, ttl)}
}

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, val []byte) error {
	m.lru.Add(key, append([]byte(nil), val...))
	return nil
}

func (m *Memory) Len() int { return m.lru.Len() }

// Redis shares cached responses between replicas.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(url string, ttl time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	return &Redis{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

func (r *Redis) Name() string { return "redis" }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	return r.rdb.Set(ctx, key, val, r.ttl).Err()
}

func (r *Redis) Ping(ctx context.Context) error { return r.rdb.Ping(ctx).Err() }

func (r *Redis) Close() error { return r.rdb.Close() }
