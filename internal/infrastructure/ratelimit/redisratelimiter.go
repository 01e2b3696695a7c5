package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements a fixed one-minute window counter per key.
type RedisRateLimiter struct {
	client *redis.Client
	ctx    context.Context
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client) Limiter {
	return &RedisRateLimiter{
		client: client,
		ctx:    context.Background(),
		window: time.Minute,
	}
}

func (l *RedisRateLimiter) Allow(key string, limit int) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	redisKey := l.getKey(key)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(l.ctx, redisKey)
	pipe.Expire(l.ctx, redisKey, l.window)

	if _, err := pipe.Exec(l.ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}

func (l *RedisRateLimiter) Reset(key string) error {
	if err := l.client.Del(l.ctx, l.getKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(key string) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(l.window.Seconds()))
}
