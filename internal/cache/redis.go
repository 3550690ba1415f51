package cache

import (
	"context"
	"encoding/json"
	"time"

	"tripbooking/config"
	"tripbooking/internal/storage"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps the trip list hot between mutations.
type RedisCache struct {
	client   *redis.Client
	tripsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, tripsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		tripsTTL: tripsTTL,
	}
}

func (c *RedisCache) GetTrips(ctx context.Context) ([]storage.Row, error) {
	data, err := c.client.Get(ctx, tripsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var trips []storage.Row
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

func (c *RedisCache) SetTrips(ctx context.Context, trips []storage.Row) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, tripsKey(), payload, c.tripsTTL).Err()
}

func (c *RedisCache) InvalidateTrips(ctx context.Context) error {
	return c.client.Del(ctx, tripsKey()).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func tripsKey() string {
	return "cache:trips"
}
