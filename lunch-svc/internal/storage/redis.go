package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStateStore keeps the visitor slots in Redis without expiry.
type RedisStateStore struct {
	Client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{Client: client}
}

func (s *RedisStateStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStateStore) Set(ctx context.Context, key, value string) error {
	return s.Client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStateStore) Delete(ctx context.Context, key string) error {
	return s.Client.Del(ctx, key).Err()
}
