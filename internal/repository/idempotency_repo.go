package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "rentx:idempotency:"

// IdempotencyStore remembers which reservation an Idempotency-Key produced.
type IdempotencyStore interface {
	Lookup(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, scheduleID int64) error
}

type redisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisIdempotencyStore connects to redisURL and pings it.
func NewRedisIdempotencyStore(ctx context.Context, redisURL string, ttl time.Duration) (IdempotencyStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("error connecting to redis: %w", err)
	}
	return &redisIdempotencyStore{client: client, ttl: ttl}, nil
}

func (s *redisIdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	v, err := s.client.Get(ctx, idempotencyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("error reading idempotency key %s: %w", key, err)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt idempotency entry %s=%q: %w", key, v, err)
	}
	return id, true, nil
}

func (s *redisIdempotencyStore) Remember(ctx context.Context, key string, scheduleID int64) error {
	err := s.client.SetNX(ctx, idempotencyPrefix+key, strconv.FormatInt(scheduleID, 10), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("error storing idempotency key %s: %w", key, err)
	}
	return nil
}
