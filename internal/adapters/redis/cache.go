// Package redisad caches serialized view models in Redis. Values are JSON
// so any struct the services cache round-trips without registration.
package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hotelera/internal/adapters/observability"
)

type Cache struct {
	client *redis.Client
}

func New(addr, pass string, db int) *Cache {
	return &Cache{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})}
}

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		observability.ObserveCache("redis", "miss")
		return false, nil
	case err != nil:
		return false, err
	}
	observability.ObserveCache("redis", "hit")
	return true, json.Unmarshal(raw, dst)
}

func (c *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("redis", "set")
	return c.client.Set(ctx, key, raw, time.Duration(ttlSec)*time.Second).Err()
}

func (c *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("redis", "del")
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error { return c.client.Close() }
