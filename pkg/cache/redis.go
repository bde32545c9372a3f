package cache

import (
	"context"
	"errors"
	"time"

	"notekeeper-be/internal/apperror"

	"github.com/redis/go-redis/v9"
)

// Client is a thin generic key/value wrapper around redis. There is no
// read-through or invalidation policy; callers treat it as a dumb store.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type redisClient struct {
	rdb *redis.Client
}

func NewRedisClient(url string) (Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &redisClient{
		rdb: redis.NewClient(opts),
	}, nil
}

func (c *redisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperror.NotFound("key %q not found", key)
		}
		return "", apperror.Storage(err)
	}
	return val, nil
}

func (c *redisClient) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return apperror.Storage(err)
	}
	return nil
}

func (c *redisClient) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
