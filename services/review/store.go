package review

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const lockTTL = 10 * time.Second

// RedisRecordStore persists review records as JSON blobs in Redis. Records
// carry no TTL; they live as long as the installation does.
type RedisRecordStore struct {
	client *redis.Client
}

func NewRedisRecordStore(client *redis.Client) *RedisRecordStore {
	return &RedisRecordStore{client: client}
}

func (s *RedisRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisRecordStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisRecordStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Acquire takes a short SETNX lease guarding the record's read-modify-write
// cycle. The TTL bounds how long a crashed invocation can hold the lease.
func (s *RedisRecordStore) Acquire(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, key+":lock", 1, lockTTL).Result()
}

func (s *RedisRecordStore) Release(ctx context.Context, key string) {
	s.client.Del(ctx, key+":lock")
}
